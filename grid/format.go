package grid

import (
	"fmt"
	"strings"
)

// FormatValues renders a flat row-major slice of cell values as an
// ASCII table. Blank cells render as a dot. Values length must be
// rows*cols; anything else returns an error string instead of a table
// so callers can print unconditionally.
func FormatValues(values []int, rows, cols int) string {
	if len(values) != rows*cols {
		return fmt.Sprintf("<%d values for %dx%d grid>", len(values), rows, cols)
	}

	width := 1
	for _, v := range values {
		if l := len(cellString(v)); l > width {
			width = l
		}
	}
	width += 2

	var b strings.Builder
	sep := "+" + strings.Repeat(strings.Repeat("-", width)+"+", cols)
	b.WriteString(sep)
	for i := 0; i < rows; i++ {
		b.WriteByte('\n')
		b.WriteByte('|')
		for j := 0; j < cols; j++ {
			b.WriteString(center(cellString(values[i*cols+j]), width))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		b.WriteString(sep)
	}
	return b.String()
}

// String renders the grid itself, blanks as dots.
func (g *Grid) String() string {
	return FormatValues(g.cells, g.rows, g.cols)
}

func cellString(v int) string {
	if v == Blank {
		return "."
	}
	return fmt.Sprintf("%d", v)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
