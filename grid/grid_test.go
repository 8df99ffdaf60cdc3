package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValid(t *testing.T) {
	g, err := New([][]int{
		{0, Blank},
		{Blank, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 2, g.Blanks())
	assert.Equal(t, 0, g.At(0, 0))
	assert.Equal(t, Blank, g.At(0, 1))
	assert.True(t, g.IsBlank(1, 0))
	assert.False(t, g.IsBlank(1, 1))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
		check func(t *testing.T, err error)
	}{
		{
			name:  "Empty",
			cells: [][]int{},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmpty)
			},
		},
		{
			name:  "EmptyRow",
			cells: [][]int{{}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmpty)
			},
		},
		{
			name:  "Ragged",
			cells: [][]int{{0, 1}, {Blank}},
			check: func(t *testing.T, err error) {
				var e *ErrRaggedRow
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 1, e.Row)
				assert.Equal(t, 2, e.Want)
			},
		},
		{
			name:  "SymbolTooLarge",
			cells: [][]int{{0, 2}, {Blank, Blank}},
			check: func(t *testing.T, err error) {
				var e *ErrSymbolRange
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 2, e.Symbol)
				assert.Equal(t, 2, e.Bound)
			},
		},
		{
			name:  "SymbolNegative",
			cells: [][]int{{-7, Blank}, {Blank, Blank}},
			check: func(t *testing.T, err error) {
				var e *ErrSymbolRange
				require.ErrorAs(t, err, &e)
			},
		},
		{
			name:  "RowDuplicate",
			cells: [][]int{{1, 1}, {Blank, Blank}},
			check: func(t *testing.T, err error) {
				var e *ErrDuplicateSymbol
				require.ErrorAs(t, err, &e)
				assert.True(t, e.InRow)
				assert.Equal(t, 0, e.Index)
				assert.Equal(t, 1, e.Symbol)
			},
		},
		{
			name:  "ColumnDuplicate",
			cells: [][]int{{1, Blank}, {1, Blank}},
			check: func(t *testing.T, err error) {
				var e *ErrDuplicateSymbol
				require.ErrorAs(t, err, &e)
				assert.False(t, e.InRow)
				assert.Equal(t, 0, e.Index)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cells)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestSymbolBoundAndBitWidth(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		bound int
		width int
	}{
		{"1x1", 1, 1, 1, 1},
		{"2x2", 2, 2, 2, 1},
		{"3x3", 3, 3, 3, 2},
		{"4x4", 4, 4, 4, 2},
		{"2x5", 2, 5, 5, 3},
		{"5x2", 5, 2, 5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := make([][]int, tt.rows)
			for i := range cells {
				row := make([]int, tt.cols)
				for j := range row {
					row[j] = Blank
				}
				cells[i] = row
			}
			g, err := New(cells)
			require.NoError(t, err)
			assert.Equal(t, tt.bound, g.SymbolBound())
			assert.Equal(t, tt.width, g.BitWidth())
		})
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	g := MustNew([][]int{{Blank}})
	assert.Panics(t, func() { g.At(1, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustNew([][]int{{0, 0}}) })
}

func TestValuesIsACopy(t *testing.T) {
	g := MustNew([][]int{{0, Blank}, {Blank, Blank}})
	v := g.Values()
	require.Equal(t, []int{0, Blank, Blank, Blank}, v)
	v[0] = 1
	assert.Equal(t, 0, g.At(0, 0))
}

func TestFormatValues(t *testing.T) {
	out := FormatValues([]int{0, 1, 1, Blank}, 2, 2)
	assert.Contains(t, out, "| 0 | 1 |")
	assert.Contains(t, out, "| 1 | . |")

	assert.Contains(t, FormatValues([]int{0}, 2, 2), "<1 values for 2x2 grid>")
}

func TestErrorStrings(t *testing.T) {
	assert.Contains(t, (&ErrRaggedRow{Row: 1, Len: 3, Want: 2}).Error(), "row 1")
	assert.Contains(t, (&ErrDuplicateSymbol{InRow: true, Index: 0, Symbol: 2}).Error(), "row 0")
	assert.Contains(t, (&ErrDuplicateSymbol{Index: 1, Symbol: 2}).Error(), "column 1")
	assert.False(t, errors.Is(&ErrRaggedRow{}, ErrEmpty))
}
