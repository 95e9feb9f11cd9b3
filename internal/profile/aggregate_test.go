package profile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateNumberColumn(t *testing.T) {
	col := aggregateColumn("a", []string{"1", "2", ""}, TypeNumber, DefaultTopK)

	assert.Equal(t, TypeNumber, col.Type)
	assert.Equal(t, 1, col.Missing)
	assert.Equal(t, 2, col.Unique)
	require.NotNil(t, col.Min)
	require.NotNil(t, col.Max)
	require.NotNil(t, col.Mean)
	assert.Equal(t, 1.0, *col.Min)
	assert.Equal(t, 2.0, *col.Max)
	assert.Equal(t, 1.5, *col.Mean)
	assert.Nil(t, col.Top)
}

func TestAggregateNumberUniqueByParsedValue(t *testing.T) {
	// "1" and "1.0" are the same number; uniqueness must not be string
	// identity on a number column.
	col := aggregateColumn("n", []string{"1", "1.0", "1.00", "2"}, TypeNumber, DefaultTopK)
	assert.Equal(t, 2, col.Unique)
}

func TestAggregateAllMissingNumberColumn(t *testing.T) {
	col := aggregateColumn("n", []string{"", "", ""}, TypeNumber, DefaultTopK)
	assert.Equal(t, 3, col.Missing)
	assert.Equal(t, 0, col.Unique)
	assert.Nil(t, col.Min)
	assert.Nil(t, col.Max)
	assert.Nil(t, col.Mean)
}

func TestAggregateTextColumn(t *testing.T) {
	col := aggregateColumn("b", []string{"x", "y", "z"}, TypeText, DefaultTopK)

	assert.Equal(t, TypeText, col.Type)
	assert.Equal(t, 0, col.Missing)
	assert.Equal(t, 3, col.Unique)
	// All tied at count 1: order of first appearance.
	assert.Equal(t, []TopValue{{"x", 1}, {"y", 1}, {"z", 1}}, col.Top)
}

func TestAggregateTopKTieBreakFirstSeen(t *testing.T) {
	values := []string{"b", "a", "a", "c", "b", "d"}
	col := aggregateColumn("t", values, TypeText, 3)

	require.Len(t, col.Top, 3)
	// b and a tie at count 2; b appeared first in the row sequence.
	assert.Equal(t, []TopValue{{"b", 2}, {"a", 2}, {"c", 1}}, col.Top)
}

func TestAggregateTopKBound(t *testing.T) {
	var values []string
	for i := 0; i < 20; i++ {
		values = append(values, fmt.Sprintf("v%d", i))
	}
	col := aggregateColumn("t", values, TypeText, 5)
	assert.Len(t, col.Top, 5)
	assert.Equal(t, 20, col.Unique)
}

func TestAggregateDuplicateColumn(t *testing.T) {
	col := aggregateColumn("d", []string{"dup", "dup", "dup", "dup", "dup"}, TypeText, DefaultTopK)
	assert.Equal(t, 1, col.Unique)
	assert.Equal(t, []TopValue{{"dup", 5}}, col.Top)
}
