package stats

import (
	"strings"
	"unicode/utf8"
)

// formatTable lays out rows under headers with two-space gutters.
// Columns listed in rightAlign are padded on the left.
func formatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, formatRow(headers, widths, rightAlign))
	rule := make([]string, len(headers))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	lines = append(lines, formatRow(rule, widths, nil))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func formatRow(cells []string, widths []int, rightAlign map[int]bool) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - utf8.RuneCountInString(cell)
		if pad < 0 {
			pad = 0
		}
		if rightAlign != nil && rightAlign[i] {
			parts[i] = strings.Repeat(" ", pad) + cell
		} else {
			parts[i] = cell + strings.Repeat(" ", pad)
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
