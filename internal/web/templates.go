package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>CSV Profiler</title></head>
<body>
<h1>CSV Profiler</h1>
<p>Upload a CSV file to analyze its structure and statistics.</p>
<form action="/profile" method="post" enctype="multipart/form-data">
  <input type="file" name="file" accept=".csv" required>
  <button type="submit">Generate Profile</button>
</form>
</body>
</html>
`))

var resultTmpl = template.Must(template.New("result").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>CSV Profiler — {{.FileName}}</title></head>
<body>
<h1>CSV Profiler</h1>
<p>Profiled <strong>{{.FileName}}</strong>: {{.Rows}} rows, {{.Cols}} columns.</p>
<h2>Columns</h2>
<table border="1" cellpadding="4">
  <tr><th>Column</th><th>Type</th><th>Missing</th><th>Unique</th><th>Stats</th></tr>
  {{range .Columns}}
  <tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.Missing}}</td><td>{{.Unique}}</td><td>{{.Stats}}</td></tr>
  {{end}}
</table>
<h2>Downloads</h2>
<ul>
  <li><a href="/reports/{{.ID}}/json">JSON report</a></li>
  <li><a href="/reports/{{.ID}}/markdown">Markdown report</a></li>
</ul>
<h2>Markdown</h2>
<pre>{{.Markdown}}</pre>
<h2>JSON</h2>
<pre>{{.JSON}}</pre>
<p><a href="/">Profile another file</a></p>
</body>
</html>
`))

type columnView struct {
	Name    string
	Type    string
	Missing string
	Unique  int
	Stats   string
}

type resultView struct {
	ID       string
	FileName string
	Rows     int
	Cols     int
	Columns  []columnView
	JSON     string
	Markdown string
}

// newResultView flattens a profile into template data. The missing
// percentage is computed here: it is presentation only and never part of
// the profile itself.
func newResultView(id, fileName string, p *profile.Profile, jsonOut, mdOut string) resultView {
	v := resultView{
		ID:       id,
		FileName: fileName,
		Rows:     p.NRows,
		Cols:     p.NCols,
		JSON:     jsonOut,
		Markdown: mdOut,
	}
	for _, c := range p.Columns {
		missPct := 0.0
		if p.NRows > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(p.NRows)
		}
		v.Columns = append(v.Columns, columnView{
			Name:    c.Name,
			Type:    c.Type.String(),
			Missing: fmt.Sprintf("%d (%.1f%%)", c.Missing, missPct),
			Unique:  c.Unique,
			Stats:   statsCell(c),
		})
	}
	return v
}

func statsCell(c profile.ColumnProfile) string {
	if c.Type == profile.TypeNumber {
		if c.Min == nil {
			return "-"
		}
		return fmt.Sprintf("min %.4g, max %.4g, mean %.4g", *c.Min, *c.Max, *c.Mean)
	}
	if len(c.Top) == 0 {
		return "-"
	}
	parts := make([]string, len(c.Top))
	for i, tv := range c.Top {
		parts[i] = fmt.Sprintf("%s (%d)", tv.Value, tv.Count)
	}
	return strings.Join(parts, ", ")
}
