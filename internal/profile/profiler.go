// Package profile turns rows of named string fields into a per-column
// statistical profile. Profiling is a full pass over a caller-owned row
// snapshot: there is no streaming mode and no partial result.
package profile

import (
	"fmt"
	"sort"
)

// DefaultTopK bounds the frequency list of a text column.
const DefaultTopK = 5

// Row is one record: column name to raw cell. A missing cell is an absent
// key or the empty string.
type Row map[string]string

// Options controls profiling behavior.
type Options struct {
	// TopK bounds the text-column frequency list; 0 means DefaultTopK.
	TopK int
	// Header fixes column names and their order. If empty, column names are
	// taken from the first row in lexicographic order (Go maps carry no
	// insertion order; readers that know the source order pass it here).
	Header []string
	// Strict rejects rows holding keys absent from the header instead of
	// ignoring them.
	Strict bool
}

// SchemaError reports a row whose keys cannot be reconciled against the
// header. It is only returned in strict mode; otherwise rows are normalized
// by treating absent fields as missing and dropping unknown ones.
type SchemaError struct {
	Row int
	Key string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("row %d: column %q not in header", e.Row, e.Key)
}

// Build profiles the given rows. It fails only on a schema violation in
// strict mode; any other input, including an empty row set, succeeds.
func Build(rows []Row, opts Options) (*Profile, error) {
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	header := opts.Header
	if len(header) == 0 && len(rows) > 0 {
		header = make([]string, 0, len(rows[0]))
		for name := range rows[0] {
			header = append(header, name)
		}
		sort.Strings(header)
	}

	if opts.Strict {
		known := make(map[string]struct{}, len(header))
		for _, name := range header {
			known[name] = struct{}{}
		}
		for i, row := range rows {
			for key := range row {
				if _, ok := known[key]; !ok {
					return nil, &SchemaError{Row: i, Key: key}
				}
			}
		}
	}

	p := &Profile{
		NRows:   len(rows),
		NCols:   len(header),
		Columns: make([]ColumnProfile, 0, len(header)),
	}

	for _, name := range header {
		values := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row[name] // absent key reads as "", i.e. missing
		}
		t := Classify(values)
		p.Columns = append(p.Columns, aggregateColumn(name, values, t, topK))
	}

	return p, nil
}
