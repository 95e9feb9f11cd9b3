package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

// Table renders the per-column statistics as a terminal table. Same data as
// the Markdown report, for interactive use.
func Table(p *profile.Profile) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Missing", "Unique", "Stats"})
	for _, c := range p.Columns {
		missPct := 0.0
		if p.NRows > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(p.NRows)
		}
		t.AppendRow(table.Row{
			c.Name,
			c.Type.String(),
			fmt.Sprintf("%d (%.1f%%)", c.Missing, missPct),
			c.Unique,
			tableStats(c),
		})
	}
	return t.Render()
}

func tableStats(c profile.ColumnProfile) string {
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
		parts[i] = fmt.Sprintf("%s (%d)", tv.Value, tv.Count)
	}
	return strings.Join(parts, ", ")
}
