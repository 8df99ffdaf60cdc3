package oracle

import (
	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/indexer"
)

// CellValidity appends the cell-bound check: the cell-validity flag is
// flipped exactly when some cell holds a value >= bound. The bound is
// applied uniformly to every cell, pre-filled or blank; pre-filled
// cells are already validated classically and never fire.
//
// One Bennett window per row: the m per-cell comparison bits are folded
// into a per-row bit and immediately uncomputed, so the same window
// scratch serves every row. All reserved ancillas are released on exit.
func CellValidity(seq *gate.Sequence, ix *indexer.Indexer, bound int) error {
	n, m, k := ix.Rows(), ix.Cols(), ix.Width()

	scratch, err := ix.Reserve(k + 2)
	if err != nil {
		return err
	}
	cellFlags, err := ix.Reserve(m)
	if err != nil {
		return err
	}
	rowFlags, err := ix.Reserve(n)
	if err != nil {
		return err
	}

	if err := PrepareBound(seq, scratch, bound, k); err != nil {
		return err
	}

	sweep := gate.NewSequence()
	for i := 0; i < n; i++ {
		window := gate.NewSequence()
		for j := 0; j < m; j++ {
			if err := LessThan(window, ix.CellBits(i, j), scratch, cellFlags[j]); err != nil {
				return err
			}
		}
		sweep.Extend(window)
		flipIfAny(sweep, cellFlags, rowFlags[i])
		sweep.Extend(window.Inverse())
	}

	seq.Extend(sweep)
	flipIfAny(seq, rowFlags, ix.CellValidFlag())
	seq.Extend(sweep.Inverse())

	if err := PrepareBound(seq, scratch, bound, k); err != nil {
		return err
	}

	return ix.Release(concat(scratch, cellFlags, rowFlags))
}

func concat(groups ...[]int) []int {
	var out []int
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
