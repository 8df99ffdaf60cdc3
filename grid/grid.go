package grid

import (
	"math/bits"
)

// Blank marks a cell that the search has to fill.
const Blank = -1

// Grid is an immutable, validated n×m puzzle.
type Grid struct {
	rows  int
	cols  int
	cells []int // row-major, Blank for empty cells
}

// New validates cells and returns the grid. Validation covers shape
// (non-empty, rectangular), symbol range (every pre-filled symbol in
// [0, max(n,m))), and pre-filled row/column uniqueness.
func New(cells [][]int) (*Grid, error) {
	rows := len(cells)
	if rows == 0 || len(cells[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, &ErrRaggedRow{Row: i, Len: len(row), Want: cols}
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]int, 0, rows*cols)}
	bound := g.SymbolBound()

	for i, row := range cells {
		for j, v := range row {
			if v != Blank && (v < 0 || v >= bound) {
				return nil, &ErrSymbolRange{Row: i, Col: j, Symbol: v, Bound: bound}
			}
			g.cells = append(g.cells, v)
		}
	}

	for i := 0; i < rows; i++ {
		seen := make(map[int]bool, cols)
		for j := 0; j < cols; j++ {
			v := g.at(i, j)
			if v == Blank {
				continue
			}
			if seen[v] {
				return nil, &ErrDuplicateSymbol{InRow: true, Index: i, Symbol: v}
			}
			seen[v] = true
		}
	}
	for j := 0; j < cols; j++ {
		seen := make(map[int]bool, rows)
		for i := 0; i < rows; i++ {
			v := g.at(i, j)
			if v == Blank {
				continue
			}
			if seen[v] {
				return nil, &ErrDuplicateSymbol{InRow: false, Index: j, Symbol: v}
			}
			seen[v] = true
		}
	}

	return g, nil
}

// MustNew is New for tests and examples; it panics on invalid input.
func MustNew(cells [][]int) *Grid {
	g, err := New(cells)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) at(i, j int) int {
	return g.cells[i*g.cols+j]
}

// Rows returns the number of rows n.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns m.
func (g *Grid) Cols() int { return g.cols }

// At returns the symbol at cell (i,j), or Blank.
// It panics if (i,j) is outside the grid.
func (g *Grid) At(i, j int) int {
	g.check(i, j)
	return g.at(i, j)
}

// IsBlank reports whether cell (i,j) has to be filled by the search.
// It panics if (i,j) is outside the grid.
func (g *Grid) IsBlank(i, j int) bool {
	return g.At(i, j) == Blank
}

// Blanks returns the number of blank cells.
func (g *Grid) Blanks() int {
	count := 0
	for _, v := range g.cells {
		if v == Blank {
			count++
		}
	}
	return count
}

// SymbolBound returns the exclusive upper bound on symbols, max(n,m).
func (g *Grid) SymbolBound() int {
	if g.rows > g.cols {
		return g.rows
	}
	return g.cols
}

// BitWidth returns k, the number of bits encoding one cell:
// ceil(log2(SymbolBound())), never less than 1.
func (g *Grid) BitWidth() int {
	k := bits.Len(uint(g.SymbolBound() - 1))
	if k < 1 {
		k = 1
	}
	return k
}

// Values returns the cells as a flat row-major slice, Blank included.
func (g *Grid) Values() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) check(i, j int) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic("grid: cell index out of range")
	}
}
