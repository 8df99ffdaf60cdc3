package oracle

import (
	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/indexer"
)

// RowUniqueness appends the row-duplicate check: the row flag is
// flipped exactly when some row contains the same symbol twice.
//
// Per row, every unordered cell pair (a,b), a<b, is compared. The
// reduction is two-level: for each anchor cell a, the pairwise-equal
// bits against the cells after it fold into one anchor bit, and the
// anchor bits fold into the per-row bit. Each level is uncomputed by
// inverse replay, and circuit depth is fixed regardless of data values.
func RowUniqueness(seq *gate.Sequence, ix *indexer.Indexer) error {
	return uniqueness(seq, ix, ix.Rows(), ix.Cols(), ix.RowFlag(), ix.CellBits)
}

// ColumnUniqueness is RowUniqueness transposed: the column flag is
// flipped exactly when some column contains the same symbol twice.
func ColumnUniqueness(seq *gate.Sequence, ix *indexer.Indexer) error {
	return uniqueness(seq, ix, ix.Cols(), ix.Rows(), ix.ColFlag(), func(j, i int) []int {
		return ix.CellBits(i, j)
	})
}

// uniqueness builds the shared duplicate check over units (rows or
// columns) of the given width. cells(unit, pos) addresses the data bits
// of position pos inside unit.
func uniqueness(seq *gate.Sequence, ix *indexer.Indexer, units, width, finalFlag int, cells func(unit, pos int) []int) error {
	k := ix.Width()

	scratch, err := ix.Reserve(k)
	if err != nil {
		return err
	}
	pairFlags, err := ix.Reserve(width)
	if err != nil {
		return err
	}
	anchorFlags, err := ix.Reserve(width - 1)
	if err != nil {
		return err
	}
	unitFlags, err := ix.Reserve(units)
	if err != nil {
		return err
	}

	sweep := gate.NewSequence()
	for u := 0; u < units; u++ {
		anchors := gate.NewSequence()
		for a := 0; a < width-1; a++ {
			pairs := gate.NewSequence()
			for b := a + 1; b < width; b++ {
				if err := Equal(pairs, cells(u, a), cells(u, b), scratch, pairFlags[b-a-1]); err != nil {
					return err
				}
			}
			anchors.Extend(pairs)
			flipIfAny(anchors, pairFlags[:width-1-a], anchorFlags[a])
			anchors.Extend(pairs.Inverse())
		}
		sweep.Extend(anchors)
		flipIfAny(sweep, anchorFlags, unitFlags[u])
		sweep.Extend(anchors.Inverse())
	}

	seq.Extend(sweep)
	flipIfAny(seq, unitFlags, finalFlag)
	seq.Extend(sweep.Inverse())

	return ix.Release(concat(scratch, pairFlags, anchorFlags, unitFlags))
}
