package profile

// Value is a single cell after its column's type has been resolved.
// It is a tagged union over {missing, text, number}: the tag comes from the
// column (via Classify), never from the cell in isolation.
type Value struct {
	kind valueKind
	text string
	num  float64
}

type valueKind uint8

const (
	valueMissing valueKind = iota
	valueText
	valueNumber
)

func (v Value) IsMissing() bool { return v.kind == valueMissing }

// Text returns the raw string and whether the value is a text value.
func (v Value) Text() (string, bool) { return v.text, v.kind == valueText }

// Number returns the parsed float and whether the value is a number value.
func (v Value) Number() (float64, bool) { return v.num, v.kind == valueNumber }

// resolve turns a raw cell into a Value under the column's resolved type.
// Empty cells are missing regardless of type. A raw cell that fails to
// parse under TypeNumber cannot occur for a column classified by Classify;
// it is kept as text so the aggregator never has to fail.
func resolve(raw string, t Type) Value {
	if raw == "" {
		return Value{kind: valueMissing}
	}
	if t == TypeNumber {
		if f, ok := parseNumber(raw); ok {
			return Value{kind: valueNumber, num: f}
		}
	}
	return Value{kind: valueText, text: raw}
}
