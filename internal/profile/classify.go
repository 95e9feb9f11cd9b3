package profile

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber reports whether a raw cell is a numeric literal. The grammar
// is strconv.ParseFloat on the trimmed cell: standard decimal and scientific
// notation with a dot decimal separator. Integers parse as floats. Values
// that parse non-finite ("NaN", "Inf") are not numbers here: they have no
// JSON representation, so admitting them would poison min/max/mean.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Classify resolves the type of a column from its raw values. Empty cells
// are excluded from the decision. The column is a number column only if
// every remaining value parses as a numeric literal; a single failure, or a
// column with no non-missing values, yields text. There is no mixed mode.
func Classify(values []string) Type {
	sawNumber := false
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := parseNumber(v); !ok {
			return TypeText
		}
		sawNumber = true
	}
	if !sawNumber {
		return TypeText
	}
	return TypeNumber
}
