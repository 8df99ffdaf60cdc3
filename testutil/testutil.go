package testutil

import (
	"github.com/hupe1980/gridoracle/grid"
)

// TwoByTwo returns the canonical 2x2 fixture with one pre-filled cell.
// Its single valid completion is [[0,1],[1,0]].
func TwoByTwo() *grid.Grid {
	return grid.MustNew([][]int{
		{0, grid.Blank},
		{grid.Blank, grid.Blank},
	})
}

// TwoByTwoBlank returns a fully blank 2x2 puzzle (two completions).
func TwoByTwoBlank() *grid.Grid {
	return grid.MustNew([][]int{
		{grid.Blank, grid.Blank},
		{grid.Blank, grid.Blank},
	})
}

// ThreeByThreeBlank returns a fully blank 3x3 puzzle.
func ThreeByThreeBlank() *grid.Grid {
	return grid.MustNew([][]int{
		{grid.Blank, grid.Blank, grid.Blank},
		{grid.Blank, grid.Blank, grid.Blank},
		{grid.Blank, grid.Blank, grid.Blank},
	})
}

// ValidLatin reports the classical predicate the oracle must agree
// with: every cell below bound, no repeated symbol in any row or
// column. cells is row-major.
func ValidLatin(cells []int, rows, cols, bound int) bool {
	at := func(i, j int) int { return cells[i*cols+j] }

	for _, v := range cells {
		if v < 0 || v >= bound {
			return false
		}
	}
	for i := 0; i < rows; i++ {
		for a := 0; a < cols; a++ {
			for b := a + 1; b < cols; b++ {
				if at(i, a) == at(i, b) {
					return false
				}
			}
		}
	}
	for j := 0; j < cols; j++ {
		for a := 0; a < rows; a++ {
			for b := a + 1; b < rows; b++ {
				if at(a, j) == at(b, j) {
					return false
				}
			}
		}
	}
	return true
}
