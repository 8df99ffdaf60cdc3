package grid

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when the grid has no rows or no columns.
var ErrEmpty = errors.New("grid must have at least one row and one column")

// ErrRaggedRow indicates a row whose length differs from the first row.
type ErrRaggedRow struct {
	Row  int
	Len  int
	Want int
}

func (e *ErrRaggedRow) Error() string {
	return fmt.Sprintf("row %d has length %d, expected %d", e.Row, e.Len, e.Want)
}

// ErrSymbolRange indicates a pre-filled symbol outside [0, Bound).
type ErrSymbolRange struct {
	Row    int
	Col    int
	Symbol int
	Bound  int
}

func (e *ErrSymbolRange) Error() string {
	return fmt.Sprintf("cell (%d,%d) holds symbol %d outside [0,%d)", e.Row, e.Col, e.Symbol, e.Bound)
}

// ErrDuplicateSymbol indicates a symbol appearing twice in a pre-filled
// row or column.
type ErrDuplicateSymbol struct {
	InRow  bool // row duplicate if true, column duplicate otherwise
	Index  int  // row or column index
	Symbol int
}

func (e *ErrDuplicateSymbol) Error() string {
	axis := "column"
	if e.InRow {
		axis = "row"
	}
	return fmt.Sprintf("%s %d contains symbol %d twice", axis, e.Index, e.Symbol)
}
