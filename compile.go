package gridoracle

import (
	"github.com/hupe1980/gridoracle/engine"
	"github.com/hupe1980/gridoracle/gate"
	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/grover"
	"github.com/hupe1980/gridoracle/indexer"
	"github.com/hupe1980/gridoracle/oracle"
)

// Circuit is a compiled puzzle: the growing gate sequence, the address
// map, and the grid it was built from. It is the sole artifact handed
// to an external execution engine. Not safe for concurrent use;
// construction is sequential by contract.
type Circuit struct {
	grid   *grid.Grid
	ix     *indexer.Indexer
	seq    *gate.Sequence
	logger *Logger
}

// Compile builds the address space for g and records the state
// preparation: pre-filled cells are X-encoded in binary, blank-cell
// bits are put into uniform superposition with Hadamards. The ancilla
// pool is sized automatically unless WithAncillas overrides it.
func Compile(g *grid.Grid, opts ...Option) (*Circuit, error) {
	o := options{
		ancillas: oracle.AncillaBudget(g),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger(nil)
	}

	ix, err := indexer.New(g, o.ancillas)
	if err != nil {
		return nil, translateError(err)
	}

	c := &Circuit{
		grid:   g,
		ix:     ix,
		seq:    gate.NewSequence(),
		logger: o.logger.WithGrid(g.Rows(), g.Cols()),
	}
	c.prepare()

	c.logger.LogCompile(ix.TotalBits(), ix.PoolSize(), c.seq.Len())
	return c, nil
}

// prepare loads the grid into the data segment.
func (c *Circuit) prepare() {
	for i := 0; i < c.grid.Rows(); i++ {
		for j := 0; j < c.grid.Cols(); j++ {
			bits := c.ix.CellBits(i, j)
			v := c.grid.At(i, j)
			if v == grid.Blank {
				for _, b := range bits {
					c.seq.Append(gate.H(b))
				}
				continue
			}
			for bit, b := range bits {
				if v>>uint(bit)&1 == 1 {
					c.seq.Append(gate.X(b))
				}
			}
		}
	}
}

// Grid returns the puzzle the circuit was compiled from.
func (c *Circuit) Grid() *grid.Grid { return c.grid }

// Indexer returns the address map external code needs to locate bits.
func (c *Circuit) Indexer() *indexer.Indexer { return c.ix }

// Sequence returns the gate sequence recorded so far.
func (c *Circuit) Sequence() *gate.Sequence { return c.seq }

// AppendOracle appends one validity-oracle pass; afterwards only the
// global flag may differ.
func (c *Circuit) AppendOracle() error {
	return translateError(oracle.Oracle(c.seq, c.ix))
}

// AppendGrover appends the given number of amplification rounds.
func (c *Circuit) AppendGrover(rounds int) error {
	before := c.seq.Len()
	if err := grover.Append(c.seq, c.ix, c.grid, rounds); err != nil {
		return translateError(err)
	}
	c.logger.LogRounds(rounds, c.seq.Len()-before)
	return nil
}

// OptimalRounds returns the round count for a known or estimated
// number of valid completions.
func (c *Circuit) OptimalRounds(solutions int) (int, error) {
	rounds, err := grover.OptimalRounds(grover.SearchSpace(c.grid), solutions)
	return rounds, translateError(err)
}

// Aggregate folds raw engine counts into grid-configuration outcomes.
func (c *Circuit) Aggregate(counts engine.Counts) ([]engine.Outcome, error) {
	return engine.Aggregate(counts, c.ix)
}

// Stats summarizes the resources of the compiled circuit so far.
type Stats struct {
	Qubits   int
	Ancillas int
	Gates    int
	ByKind   map[string]int
}

// Stats returns the current resource usage of the circuit.
func (c *Circuit) Stats() Stats {
	byKind := make(map[string]int, 4)
	for _, k := range []gate.Kind{gate.KindX, gate.KindH, gate.KindZ, gate.KindMCX} {
		if n := c.seq.CountKind(k); n > 0 {
			byKind[k.String()] = n
		}
	}
	return Stats{
		Qubits:   c.ix.TotalBits(),
		Ancillas: c.ix.PoolSize(),
		Gates:    c.seq.Len(),
		ByKind:   byKind,
	}
}
