// Package gridoracle compiles partially filled Latin-square puzzles
// into reversible Boolean circuits for amplitude-amplification search.
//
// The compiler encodes every grid cell into k contiguous bits of a flat
// register, builds a self-uncomputing validity oracle out of Bennett
// compute/flag/uncompute sub-circuits (cell bound, row uniqueness,
// column uniqueness), and appends amplification rounds that diffuse
// over blank-cell bits only. Executing the circuit is out of scope:
// the produced gate sequence and address map are handed to any
// engine.Runner implementation.
//
// # Quick Start
//
//	g := grid.MustNew([][]int{
//	    {0, grid.Blank},
//	    {grid.Blank, grid.Blank},
//	})
//
//	c, _ := gridoracle.Compile(g)
//	rounds, _ := c.OptimalRounds(1) // one known completion
//	_ = c.AppendGrover(rounds)
//
//	counts, _ := runner.Run(ctx, c.Sequence(), c.Indexer().TotalBits(), 1024)
//	outcomes, _ := c.Aggregate(counts)
//
// # Guarantees
//
// Every sub-circuit returns each borrowed scratch bit to its initial
// value before release, so the free-ancilla set is identical before and
// after any oracle invocation, and calling the oracle twice in
// succession is the identity transform on every bit. Circuit depth is
// fixed regardless of data values; the construction never branches on
// cell contents.
package gridoracle
