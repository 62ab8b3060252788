package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table lays out rows of cells in columns. The last column takes whatever
// width is left after the others are sized to their widest cell, capped at
// MaxColumn.
type Table struct {
	Headers   []string
	Rows      [][]string
	MaxColumn int
}

// Lines renders the table into at most height lines of exactly width
// columns: header, rule, then rows. Rows beyond height are replaced by a
// "… N more" line.
func (t Table) Lines(width, height int) []string {
	if width <= 0 || height <= 0 || len(t.Headers) == 0 {
		return nil
	}
	widths := t.columnWidths(width)

	lines := make([]string, 0, min(height, len(t.Rows)+2))
	lines = append(lines, joinCells(t.Headers, widths), Separator(width))

	room := height - len(lines)
	rows, hidden := t.Rows, 0
	if len(rows) > room {
		hidden = len(rows) - room + 1
		rows = rows[:max(room-1, 0)]
	}
	for _, r := range rows {
		lines = append(lines, joinCells(r, widths))
	}
	if hidden > 0 && room > 0 {
		lines = append(lines, Cell("… "+strconv.Itoa(hidden)+" more", width))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// String renders the table with Lines and joins the result.
func (t Table) String(width, height int) string {
	return strings.Join(t.Lines(width, height), "\n")
}

func (t Table) columnWidths(width int) []int {
	n := len(t.Headers)
	widths := make([]int, n)
	used := 0
	for c := range n - 1 {
		w := runewidth.StringWidth(t.Headers[c])
		for _, r := range t.Rows {
			if c < len(r) {
				w = max(w, runewidth.StringWidth(Sanitize(r[c])))
			}
		}
		if t.MaxColumn > 0 {
			w = min(w, t.MaxColumn)
		}
		widths[c] = w
		used += w + 1
	}
	widths[n-1] = max(width-used, 0)
	// Shrink leading columns when the terminal is narrower than the content.
	for c := 0; used > width && c < n-1; c++ {
		cut := min(widths[c], used-width)
		widths[c] -= cut
		used -= cut
	}
	return widths
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var s string
		if i < len(cells) {
			s = cells[i]
		}
		parts[i] = Cell(s, w)
	}
	return strings.Join(parts, " ")
}
