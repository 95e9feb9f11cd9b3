package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// TypeText is the default column type: any column with a non-numeric
	// value, or with no non-missing values at all, is text.
	TypeText Type = iota
	TypeNumber
)

// Type is the resolved type of a column.
type Type uint8

func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	}
	return ""
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "number":
		*t = TypeNumber
	case "text":
		*t = TypeText
	default:
		return fmt.Errorf("unknown column type: %q", s)
	}
	return nil
}

// TopValue is one entry of a text column's frequency list.
type TopValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnProfile holds the aggregated statistics for one column.
//
// Min, Max and Mean are set only for number columns with at least one
// non-missing value; Top is set only for text columns with at least one
// non-missing value.
type ColumnProfile struct {
	Name    string     `json:"name"`
	Type    Type       `json:"type"`
	Missing int        `json:"missing"`
	Unique  int        `json:"unique"`
	Min     *float64   `json:"min,omitempty"`
	Max     *float64   `json:"max,omitempty"`
	Mean    *float64   `json:"mean,omitempty"`
	Top     []TopValue `json:"top,omitempty"`
}

// Profile is the full result of profiling one row set. Columns are in
// header order. A Profile is built fresh per call and never mutated after.
type Profile struct {
	NRows   int             `json:"n_rows"`
	NCols   int             `json:"n_cols"`
	Columns []ColumnProfile `json:"columns"`
}

// Column returns the profile for the named column, or nil.
func (p *Profile) Column(name string) *ColumnProfile {
	for i := range p.Columns {
		if p.Columns[i].Name == name {
			return &p.Columns[i]
		}
	}
	return nil
}
