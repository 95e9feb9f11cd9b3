// Package reader turns raw delimited text into the row maps consumed by
// the profiler. It is an I/O shim: all statistics live elsewhere.
package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// UniversalReader wraps an io.Reader to strip a UTF-8 BOM and replace bare
// carriage returns with newlines, so csv.Reader can delimit lines from
// files written on any platform.
type UniversalReader struct {
	r       io.Reader
	scanned bool
}

func NewUniversalReader(r io.Reader) *UniversalReader {
	return &UniversalReader{r: r}
}

func (r *UniversalReader) Read(buf []byte) (int, error) {
	n, err := r.r.Read(buf)

	// A BOM is only valid at the very start of the stream; later reads
	// must not touch byte sequences that merely look like one.
	if !r.scanned {
		r.scanned = true
		if n >= len(bom) && bytes.HasPrefix(buf[:n], bom) {
			copy(buf, buf[len(bom):n])
			n -= len(bom)
		}
	}

	for i, b := range buf[:n] {
		if b == '\r' {
			buf[i] = '\n'
		}
	}

	return n, err
}

// ReadFile reads a CSV file and returns its header and rows. Open and read
// failures are wrapped and surfaced to the caller.
func ReadFile(path string) ([]string, []profile.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses in-memory CSV text, as produced by an upload.
func ParseString(text string) ([]string, []profile.Row, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads CSV from r. The first record is the header; every following
// record becomes one Row keyed by header name. Short records are padded
// with empty cells and surplus cells are dropped, so every row shares the
// header's column set. Empty input yields no header and no rows.
func Parse(r io.Reader) ([]string, []profile.Row, error) {
	cr := csv.NewReader(NewUniversalReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []profile.Row
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(profile.Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
