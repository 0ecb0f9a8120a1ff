package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnGap separates table columns in text mode.
const columnGap = "  "

// Table emits a table. JSON mode writes headers and rows unchanged; text
// mode prints a bold header row, a rule, and the rows aligned by display
// width. Rows shorter than the header are padded with empty cells.
func (f *Formatter) Table(headers []string, rows [][]string) {
	if f.json {
		if headers == nil {
			headers = []string{}
		}
		if rows == nil {
			rows = [][]string{}
		}
		f.writeJSON(tableRecord{Type: "table", Headers: headers, Rows: rows})
		return
	}

	widths := columnWidths(headers, rows)
	if len(widths) == 0 {
		return
	}

	f.printf("%s\n", f.styles.header.Sprint(formatRow(headers, widths)))

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	f.printf("%s\n", strings.Join(rule, columnGap))

	for _, row := range rows {
		f.printf("%s\n", formatRow(row, widths))
	}
}

// columnWidths returns the display width of each column across the header
// and every row.
func columnWidths(headers []string, rows [][]string) []int {
	n := len(headers)
	for _, row := range rows {
		n = max(n, len(row))
	}

	widths := make([]int, n)
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

// formatRow pads every cell but the last to its column width.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i < len(widths)-1 {
			cell = runewidth.FillRight(cell, w)
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ")
}
