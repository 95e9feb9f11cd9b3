package render

import (
	"fmt"
	"strings"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

// Markdown renders the profile as a standalone Markdown report: a summary
// heading followed by one table row per column. Missing counts carry a
// percentage of n_rows; that is a presentation concern, so it is computed
// here and nowhere else.
func Markdown(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString("# CSV Profile\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString(fmt.Sprintf("- Rows: %d\n", p.NRows))
	b.WriteString(fmt.Sprintf("- Columns: %d\n", p.NCols))

	if len(p.Columns) == 0 {
		return b.String()
	}

	b.WriteString("\n## Columns\n\n")
	b.WriteString("| Column | Type | Missing | Unique | Stats |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range p.Columns {
		missPct := 0.0
		if p.NRows > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(p.NRows)
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %d (%.1f%%) | %d | %s |\n",
			safeCell(c.Name), c.Type, c.Missing, missPct, c.Unique, columnStats(c)))
	}
	return b.String()
}

// columnStats renders the type-appropriate statistics cell.
func columnStats(c profile.ColumnProfile) string {
	if c.Type == profile.TypeNumber {
		if c.Min == nil {
			return "-"
		}
		return fmt.Sprintf("min %s, max %s, mean %s",
			formatNumber(*c.Min), formatNumber(*c.Max), formatNumber(*c.Mean))
	}
	if len(c.Top) == 0 {
		return "-"
	}
	parts := make([]string, len(c.Top))
	for i, tv := range c.Top {
		parts[i] = fmt.Sprintf("%s (%d)", safeCell(tv.Value), tv.Count)
	}
	return "top: " + strings.Join(parts, ", ")
}

func formatNumber(f float64) string {
	return fmt.Sprintf("%.4g", f)
}

// safeCell keeps user data from breaking Markdown table syntax.
func safeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
