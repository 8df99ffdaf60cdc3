package grover

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/indexer"
	"github.com/hupe1980/gridoracle/oracle"
)

var (
	// ErrNoSolutions is returned when the caller supplies a
	// non-positive solution count; with no amplification target the
	// round formula has no meaning.
	ErrNoSolutions = errors.New("solution count must be positive")

	// ErrNoBlanks is returned when diffusion is requested for a grid
	// with nothing left to search.
	ErrNoBlanks = errors.New("grid has no blank cells")
)

// BlankBits returns the addresses of every data bit belonging to a
// blank cell of g. Ascending address order is row-major cell order, so
// the bitmap iterates in exactly the order the diffusion operator
// expects.
func BlankBits(ix *indexer.Indexer, g *grid.Grid) *roaring.Bitmap {
	bits := roaring.New()
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if !g.IsBlank(i, j) {
				continue
			}
			for b := 0; b < ix.Width(); b++ {
				bits.Add(uint32(ix.Data(i, j, b)))
			}
		}
	}
	return bits
}

// Diffusion appends the inversion-about-the-mean operator over the
// given bits: Hadamard spread, bit flip, a multi-controlled Z realized
// as an H-conjugated MCX on the last bit, then the flips and spread
// undone. With a single bit the MCX degenerates to a plain X, which is
// the correct one-bit diffuser.
func Diffusion(seq *gate.Sequence, bits []int) error {
	if len(bits) == 0 {
		return ErrNoBlanks
	}

	for _, b := range bits {
		seq.Append(gate.H(b))
	}
	for _, b := range bits {
		seq.Append(gate.X(b))
	}
	last := bits[len(bits)-1]
	seq.Append(gate.H(last))
	seq.Append(gate.MCX(bits[:len(bits)-1], last))
	seq.Append(gate.H(last))
	for _, b := range bits {
		seq.Append(gate.X(b))
	}
	for _, b := range bits {
		seq.Append(gate.H(b))
	}
	return nil
}

// Append records rounds amplification rounds. The oracle sub-sequence
// is built once and spliced per round, forward for the mark and
// reversed for the uncompute, so every round is gate-for-gate the
// inverse-paired shape the ancilla discipline relies on.
func Append(seq *gate.Sequence, ix *indexer.Indexer, g *grid.Grid, rounds int) error {
	if rounds < 0 {
		return errors.New("round count must not be negative")
	}
	if rounds == 0 {
		return nil
	}

	blanks := BlankBits(ix, g)
	bits := make([]int, 0, blanks.GetCardinality())
	it := blanks.Iterator()
	for it.HasNext() {
		bits = append(bits, int(it.Next()))
	}

	mark := gate.NewSequence()
	if err := oracle.Oracle(mark, ix); err != nil {
		return err
	}
	unmark := mark.Inverse()

	for r := 0; r < rounds; r++ {
		seq.Extend(mark)
		seq.Append(gate.Z(ix.GlobalFlag()))
		seq.Extend(unmark)
		if err := Diffusion(seq, bits); err != nil {
			return err
		}
	}
	return nil
}
