// Package indexer manages the flat bit-address space of a compiled
// circuit: the row-major data segment, the four dedicated flag bits,
// and a fixed ancilla pool with a reserve/release discipline.
//
// Segment layout is computed once at construction and never changes:
//
//	[0, n·m·k)      data bits, cell bits contiguous, low bit first
//	n·m·k           row-uniqueness flag
//	n·m·k + 1       column-uniqueness flag
//	n·m·k + 2       cell-validity flag
//	n·m·k + 3       global flag
//	[n·m·k+4, ...)  ancilla pool
//
// The pool is the only shared, mutable resource of the construction
// path. Reserve hands out the lowest free addresses in ascending order,
// which keeps circuit construction deterministic; Release rejects
// addresses outside the pool and double releases, the loudest available
// signal of a broken compute/uncompute pairing.
package indexer
