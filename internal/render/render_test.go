package render

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

func buildProfile(t *testing.T, rows []profile.Row, header []string) *profile.Profile {
	t.Helper()
	p, err := profile.Build(rows, profile.Options{Header: header})
	if err != nil {
		t.Fatalf("build profile: %v", err)
	}
	return p
}

func TestJSONRoundTrip(t *testing.T) {
	p := buildProfile(t, []profile.Row{
		{"a": "1", "b": "x"},
		{"a": "2", "b": "y"},
		{"a": "", "b": "z"},
	}, []string{"a", "b"})

	out, err := JSON(p)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}

	var got profile.Profile
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(p, &got) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, *p)
	}
}

func TestJSONDeterministic(t *testing.T) {
	p := buildProfile(t, []profile.Row{{"a": "1"}}, []string{"a"})
	first, err := JSON(p)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	second, err := JSON(p)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	if first != second {
		t.Fatalf("output not deterministic:\n%s\n%s", first, second)
	}
	if !strings.Contains(first, `"n_rows": 1`) {
		t.Fatalf("missing n_rows: %s", first)
	}
}

func TestJSONOmitsUndefinedStats(t *testing.T) {
	p := buildProfile(t, []profile.Row{{"n": ""}}, []string{"n"})
	out, err := JSON(p)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	for _, key := range []string{`"min"`, `"max"`, `"mean"`} {
		if strings.Contains(out, key) {
			t.Fatalf("all-missing column should omit %s: %s", key, out)
		}
	}
}

func TestJSONNonFiniteCells(t *testing.T) {
	// "NaN"/"Inf" cells classify as text, so the profile stays
	// JSON-representable end to end.
	p := buildProfile(t, []profile.Row{{"n": "NaN"}, {"n": "Inf"}}, []string{"n"})
	out, err := JSON(p)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	if !strings.Contains(out, `"type": "text"`) {
		t.Fatalf("expected text column: %s", out)
	}
}

func TestMarkdownReport(t *testing.T) {
	p := buildProfile(t, []profile.Row{
		{"a": "1", "b": "x"},
		{"a": "2", "b": "y"},
		{"a": "", "b": "z"},
	}, []string{"a", "b"})

	md := Markdown(p)
	if !strings.Contains(md, "# CSV Profile") {
		t.Fatalf("markdown missing heading: %s", md)
	}
	if !strings.Contains(md, "- Rows: 3") || !strings.Contains(md, "- Columns: 2") {
		t.Fatalf("markdown missing summary: %s", md)
	}
	if !strings.Contains(md, "| a | number | 1 (33.3%) | 2 | min 1, max 2, mean 1.5 |") {
		t.Fatalf("markdown missing numeric row: %s", md)
	}
	if !strings.Contains(md, "| b | text | 0 (0.0%) | 3 | top: x (1), y (1), z (1) |") {
		t.Fatalf("markdown missing text row: %s", md)
	}
}

func TestMarkdownEmptyProfile(t *testing.T) {
	p := buildProfile(t, nil, nil)
	md := Markdown(p)
	if !strings.Contains(md, "- Rows: 0") || !strings.Contains(md, "- Columns: 0") {
		t.Fatalf("markdown missing empty summary: %s", md)
	}
	if strings.Contains(md, "## Columns") {
		t.Fatalf("empty profile should have no columns section: %s", md)
	}
}

func TestMarkdownEscapesTableCells(t *testing.T) {
	p := buildProfile(t, []profile.Row{
		{"c|d": "v|w"},
		{"c|d": "v|w"},
	}, []string{"c|d"})

	md := Markdown(p)
	if !strings.Contains(md, `c\|d`) {
		t.Fatalf("column name not escaped: %s", md)
	}
	if !strings.Contains(md, `v\|w (2)`) {
		t.Fatalf("top value not escaped: %s", md)
	}
}

func TestMarkdownNeutralizesLineBreaksInCells(t *testing.T) {
	p := buildProfile(t, []profile.Row{
		{"c": "v\rw"},
		{"c": "x\ny"},
	}, []string{"c"})

	md := Markdown(p)
	if !strings.Contains(md, "v w (1)") || !strings.Contains(md, "x y (1)") {
		t.Fatalf("line breaks not neutralized: %q", md)
	}
}

func TestMarkdownAllMissingNumberColumn(t *testing.T) {
	p := &profile.Profile{
		NRows: 2,
		NCols: 1,
		Columns: []profile.ColumnProfile{
			{Name: "n", Type: profile.TypeNumber, Missing: 2},
		},
	}
	md := Markdown(p)
	if !strings.Contains(md, "| n | number | 2 (100.0%) | 0 | - |") {
		t.Fatalf("markdown missing sentinel for undefined stats: %s", md)
	}
}

func TestTableReport(t *testing.T) {
	p := buildProfile(t, []profile.Row{
		{"a": "1", "b": "x"},
		{"a": "2", "b": "x"},
	}, []string{"a", "b"})

	out := Table(p)
	for _, want := range []string{"COLUMN", "TYPE", "MISSING", "UNIQUE", "number", "x (2)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}
