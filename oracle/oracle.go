package oracle

import (
	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/indexer"
)

// Oracle appends the full validity oracle. It runs the three constraint
// sub-circuits, folds their violation flags into the global flag with
// an all-clear-controlled flip (the global flag is therefore set
// exactly when every constraint holds), and replays the sub-circuits in
// reverse so that only the global flag differs afterwards.
//
// Two back-to-back Oracle calls are the identity on every bit: the
// global flag flips twice. The amplification driver uses exactly this
// as its uncompute step.
func Oracle(seq *gate.Sequence, ix *indexer.Indexer) error {
	bound := ix.Rows()
	if ix.Cols() > bound {
		bound = ix.Cols()
	}

	sub := gate.NewSequence()
	if err := CellValidity(sub, ix, bound); err != nil {
		return err
	}
	if err := RowUniqueness(sub, ix); err != nil {
		return err
	}
	if err := ColumnUniqueness(sub, ix); err != nil {
		return err
	}

	seq.Extend(sub)
	flipIfNone(seq, []int{ix.CellValidFlag(), ix.RowFlag(), ix.ColFlag()}, ix.GlobalFlag())
	seq.Extend(sub.Inverse())
	return nil
}

// AncillaBudget returns the pool size that covers the worst-case
// simultaneous reservation across the three sub-circuits:
//
//	cell bound:        k+2 comparator scratch + m window + n row bits
//	row uniqueness:    k scratch + 2m-1 pair/anchor bits + n row bits
//	column uniqueness: k scratch + 2n-1 pair/anchor bits + m column bits
func AncillaBudget(g *grid.Grid) int {
	n, m, k := g.Rows(), g.Cols(), g.BitWidth()
	budget := k + 2 + n + m
	if row := k + 2*m + n - 1; row > budget {
		budget = row
	}
	if col := k + 2*n + m - 1; col > budget {
		budget = col
	}
	return budget
}
