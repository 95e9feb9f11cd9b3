// Package render maps a finished profile to output strings. Renderers are
// pure transforms: they never mutate the profile and never fail on a
// well-formed one.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

// JSON serializes the profile as indented JSON. Key order follows the
// struct field order, so output is deterministic for equal profiles; the
// undefined min/max/mean of an all-missing number column are omitted.
func JSON(p *profile.Profile) (string, error) {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	return string(b), nil
}
