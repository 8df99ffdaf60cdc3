package grover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/indexer"
	"github.com/hupe1980/gridoracle/oracle"
	"github.com/hupe1980/gridoracle/testutil"
)

func newIndexer(t *testing.T, g *grid.Grid) *indexer.Indexer {
	t.Helper()
	ix, err := indexer.New(g, oracle.AncillaBudget(g))
	require.NoError(t, err)
	return ix
}

// Blank-cell bits must come out in row-major order and cover blank
// cells only.
func TestBlankBits(t *testing.T) {
	g := testutil.TwoByTwo() // (0,0) pre-filled, k=1
	ix := newIndexer(t, g)

	bits := BlankBits(ix, g)
	require.EqualValues(t, 3, bits.GetCardinality())

	var got []int
	it := bits.Iterator()
	for it.HasNext() {
		got = append(got, int(it.Next()))
	}
	assert.Equal(t, []int{
		ix.Data(0, 1, 0),
		ix.Data(1, 0, 0),
		ix.Data(1, 1, 0),
	}, got)
	assert.False(t, bits.Contains(uint32(ix.Data(0, 0, 0))))
}

func TestDiffusionShape(t *testing.T) {
	seq := gate.NewSequence()
	require.NoError(t, Diffusion(seq, []int{0, 1, 2}))

	// H sweep, X sweep, H-conjugated MCX, X sweep, H sweep.
	assert.Equal(t, 15, seq.Len())
	assert.Equal(t, 8, seq.CountKind(gate.KindH))
	assert.Equal(t, 6, seq.CountKind(gate.KindX))
	assert.Equal(t, 1, seq.CountKind(gate.KindMCX))

	mcx := seq.Gates()[7]
	assert.Equal(t, gate.KindMCX, mcx.Kind)
	assert.Equal(t, []int{0, 1}, mcx.Controls)
	assert.Equal(t, 2, mcx.Target)
}

func TestDiffusionSingleBit(t *testing.T) {
	seq := gate.NewSequence()
	require.NoError(t, Diffusion(seq, []int{4}))
	assert.Equal(t, 7, seq.Len())
	// The zero-control MCX degenerates to an unconditional flip.
	assert.Empty(t, seq.Gates()[3].Controls)
}

func TestDiffusionNoBits(t *testing.T) {
	assert.ErrorIs(t, Diffusion(gate.NewSequence(), nil), ErrNoBlanks)
}

func TestAppendRounds(t *testing.T) {
	g := testutil.TwoByTwo()
	ix := newIndexer(t, g)

	oneOracle := gate.NewSequence()
	require.NoError(t, oracle.Oracle(oneOracle, ix))

	seq := gate.NewSequence()
	require.NoError(t, Append(seq, ix, g, 2))

	diffusion := 4*3 + 3 // H/X sweeps over 3 bits plus the conjugated MCX
	perRound := 2*oneOracle.Len() + 1 + diffusion
	assert.Equal(t, 2*perRound, seq.Len())
	assert.Equal(t, 2, seq.CountKind(gate.KindZ))

	// The pool must be untouched after the driver ran.
	assert.Equal(t, ix.PoolSize(), ix.FreeAncillas())
}

func TestAppendZeroRounds(t *testing.T) {
	g := testutil.TwoByTwo()
	ix := newIndexer(t, g)
	seq := gate.NewSequence()
	require.NoError(t, Append(seq, ix, g, 0))
	assert.Equal(t, 0, seq.Len())
}

func TestAppendNegativeRounds(t *testing.T) {
	g := testutil.TwoByTwo()
	ix := newIndexer(t, g)
	assert.Error(t, Append(gate.NewSequence(), ix, g, -1))
}

// Each round's mark and uncompute halves must be exact gate-level
// mirrors around the phase flip.
func TestAppendRoundIsInversePaired(t *testing.T) {
	g := testutil.TwoByTwo()
	ix := newIndexer(t, g)

	seq := gate.NewSequence()
	require.NoError(t, Append(seq, ix, g, 1))

	oneOracle := gate.NewSequence()
	require.NoError(t, oracle.Oracle(oneOracle, ix))
	n := oneOracle.Len()

	gates := seq.Gates()
	require.Equal(t, gate.KindZ, gates[n].Kind)
	require.Equal(t, ix.GlobalFlag(), gates[n].Target)
	for i := 0; i < n; i++ {
		assert.Equal(t, gates[i], gates[2*n-i], "gate %d has no mirror", i)
	}
}
