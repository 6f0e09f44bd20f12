package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const colGap = "  "

// RenderTable lays out rows under a header and a rule. Widths are measured
// on visible text so styled cells line up. Columns whose cells are all
// numbers are right-aligned; trailing left-aligned cells are not padded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := lo.Map(headers, func(h string, _ int) int { return lipgloss.Width(h) })
	numeric := lo.Map(headers, func(string, int) bool { return len(rows) > 0 })
	for _, row := range rows {
		for i := range headers {
			cell := cellAt(row, i)
			widths[i] = max(widths[i], lipgloss.Width(cell))
			if cell != "" && !isNumber(cell) {
				numeric[i] = false
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(...string) string) {
		last := len(headers) - 1
		for i := range headers {
			cell := cellAt(cells, i)
			gap := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			switch {
			case numeric[i]:
				b.WriteString(gap + style(cell))
			case i < last:
				b.WriteString(style(cell) + gap)
			default:
				b.WriteString(style(cell))
			}
			if i < last {
				b.WriteString(colGap)
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, StyleHeader.Render)
	rules := lo.Map(widths, func(w int, _ int) string { return strings.Repeat("─", w) })
	writeRow(rules, StyleMuted.Render)
	for _, row := range rows {
		writeRow(row, plain)
	}
	return b.String()
}

func plain(strs ...string) string { return strings.Join(strs, "") }

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isNumber(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return s != "" && strings.Trim(s, "0123456789") == ""
}
