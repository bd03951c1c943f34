package cli

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxNameWidth caps product/order name columns in listings.
const DefaultMaxNameWidth = 40

// Table formats columnar output with automatic column width calculation.
// Price and quantity columns can be right-aligned.
type Table struct {
	rows       [][]string
	colWidths  []int
	maxWidths  map[int]int
	rightAlign map[int]bool
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column. Content
// exceeding the limit is truncated with an ellipsis.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AlignRight right-aligns a column (used for prices and quantities).
func (t *Table) AlignRight(col int) {
	if t.rightAlign == nil {
		t.rightAlign = make(map[int]bool)
	}
	t.rightAlign[col] = true
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var parts []string
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			padding := t.colWidths[i] - visibleWidth(col)
			switch {
			case t.rightAlign[i]:
				parts = append(parts, strings.Repeat(" ", padding)+col)
			case i < len(t.colWidths)-1:
				parts = append(parts, col+strings.Repeat(" ", padding))
			default:
				// Last left-aligned column needs no padding.
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters with an ellipsis.
// ANSI escape codes are preserved and re-terminated with a reset.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	ellipsis := "..."
	limit := maxWidth - len(ellipsis)
	if limit < 0 {
		limit = 0
		ellipsis = ellipsis[:maxWidth]
	}

	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			hasAnsi = true
			b.WriteRune(r)
			continue
		}
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if visible >= limit {
			break
		}
		b.WriteRune(r)
		visible++
	}

	b.WriteString(ellipsis)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}
	return width
}
