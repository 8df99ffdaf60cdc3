package gridoracle

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/internal/classical"
	"github.com/hupe1980/gridoracle/testutil"
)

func TestCompileStats(t *testing.T) {
	c, err := Compile(testutil.TwoByTwo())
	require.NoError(t, err)

	stats := c.Stats()
	assert.Equal(t, 15, stats.Qubits) // 4 data + 4 flags + 7 pool
	assert.Equal(t, 7, stats.Ancillas)
	assert.Equal(t, 3, stats.Gates)
	assert.Equal(t, map[string]int{"h": 3}, stats.ByKind)
}

func TestCompileWithAncillas(t *testing.T) {
	c, err := Compile(testutil.TwoByTwo(), WithAncillas(2))
	require.NoError(t, err)
	assert.Equal(t, 10, c.Indexer().TotalBits())

	// Too small a pool surfaces as resource exhaustion, not a panic.
	assert.ErrorIs(t, c.AppendOracle(), ErrResourceExhausted)
}

func TestCompileEncodesPrefilledCells(t *testing.T) {
	c, err := Compile(grid.MustNew([][]int{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	seq := c.Sequence()
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, 2, seq.CountKind(gate.KindX))
	assert.Equal(t, 0, seq.CountKind(gate.KindH))
	assert.Equal(t, c.Indexer().Data(0, 0, 0), seq.Gates()[0].Target)
}

// A 2x2 puzzle with (0,0)=0 has exactly one valid completion,
// [[0,1],[1,0]]. Exhausting all eight blank assignments through the
// oracle must mark that completion and nothing else.
func TestOracleMarksUniqueCompletion(t *testing.T) {
	c, err := Compile(testutil.TwoByTwo())
	require.NoError(t, err)

	prep := c.Sequence().Len()
	require.NoError(t, c.AppendOracle())

	// The oracle alone, without the Hadamard state preparation.
	oracleSeq := gate.NewSequence()
	oracleSeq.Append(c.Sequence().Gates()[prep:]...)

	ix := c.Indexer()
	targets := []int{ix.Data(0, 1, 0), ix.Data(1, 0, 0), ix.Data(1, 1, 0)}

	var mu sync.Mutex
	var marked []uint64
	err = classical.Enumerate(context.Background(), ix.TotalBits(), targets,
		func(s *classical.State) error {
			return s.Run(oracleSeq)
		},
		func(assign uint64, s *classical.State) error {
			if s.Get(ix.GlobalFlag()) {
				mu.Lock()
				marked = append(marked, assign)
				mu.Unlock()
			}
			return nil
		})
	require.NoError(t, err)

	// Only (0,1)=1, (1,0)=1, (1,1)=0 survives: assignment 0b011.
	require.Len(t, marked, 1)
	assert.EqualValues(t, 0b011, marked[0])
}

func TestOptimalRounds(t *testing.T) {
	c, err := Compile(testutil.TwoByTwo())
	require.NoError(t, err)

	// floor(pi/4 * sqrt(8/1)) over three blank bits.
	rounds, err := c.OptimalRounds(1)
	require.NoError(t, err)
	assert.Equal(t, 2, rounds)

	_, err = c.OptimalRounds(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// A fully pre-filled valid grid compiles to a classical circuit: the
// deterministic runner must report a single outcome with the global
// flag raised, and aggregation must recover the grid.
func TestEndToEndClassicalRun(t *testing.T) {
	c, err := Compile(grid.MustNew([][]int{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	require.NoError(t, c.AppendOracle())

	ix := c.Indexer()
	counts, err := classical.Runner{}.Run(context.Background(), c.Sequence(), ix.TotalBits(), 100)
	require.NoError(t, err)
	require.Len(t, counts, 1)

	for key := range counts {
		assert.Equal(t, byte('1'), key[ix.GlobalFlag()])
	}

	out, err := c.Aggregate(counts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []int{0, 1, 1, 0}, out[0].Cells)
	assert.Equal(t, 100, out[0].Count)
}

func TestAppendGrover(t *testing.T) {
	c, err := Compile(testutil.TwoByTwo(), WithLogger(NoopLogger()))
	require.NoError(t, err)

	before := c.Sequence().Len()
	require.NoError(t, c.AppendGrover(2))
	assert.Greater(t, c.Sequence().Len(), before)
	assert.Equal(t, 2, c.Sequence().CountKind(gate.KindZ))
}

func TestAppendGroverNoBlanks(t *testing.T) {
	c, err := Compile(grid.MustNew([][]int{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.ErrorIs(t, c.AppendGrover(1), ErrInvalidArgument)
}

func TestTranslateError(t *testing.T) {
	_, gridErr := grid.New([][]int{{0, 5}})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"Nil", nil, nil},
		{"GridValidation", gridErr, ErrInvalidGrid},
		{"EmptyGrid", grid.ErrEmpty, ErrInvalidGrid},
		{"Passthrough", assert.AnError, assert.AnError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			if !errors.Is(tt.err, tt.want) {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}
