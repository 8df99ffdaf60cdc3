// Package grid models partially filled Latin-square puzzles.
//
// A grid is an n×m matrix of cells holding either a symbol in
// [0, max(n,m)) or Blank. Construction validates shape, symbol range,
// and row/column uniqueness of the pre-filled cells once; the compiled
// circuit never re-checks the pre-fill.
package grid
