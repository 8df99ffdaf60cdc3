package indexer

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gridoracle/grid"
)

// Indexer owns the flat bit-address space for one puzzle instance.
// It is created once per grid and mutated only through Reserve and
// Release while the circuit is being built. It is not safe for
// concurrent use; construction is sequential by contract.
type Indexer struct {
	rows  int
	cols  int
	width int

	baseData   int
	flagRow    int
	flagCol    int
	flagCell   int
	flagGlobal int
	basePool   int
	total      int

	poolSize int
	free     *bitset.BitSet // pool-relative indices
}

// New builds the address space for g with a pool of ancillas scratch
// bits. The pool must cover the worst-case simultaneous reservation of
// the sub-circuits built on top (see oracle.AncillaBudget).
func New(g *grid.Grid, ancillas int) (*Indexer, error) {
	if ancillas < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, ancillas)
	}

	ix := &Indexer{
		rows:     g.Rows(),
		cols:     g.Cols(),
		width:    g.BitWidth(),
		poolSize: ancillas,
	}
	dataBits := ix.rows * ix.cols * ix.width
	ix.baseData = 0
	ix.flagRow = dataBits
	ix.flagCol = ix.flagRow + 1
	ix.flagCell = ix.flagCol + 1
	ix.flagGlobal = ix.flagCell + 1
	ix.basePool = ix.flagGlobal + 1
	ix.total = ix.basePool + ancillas

	ix.free = bitset.New(uint(ancillas))
	for i := 0; i < ancillas; i++ {
		ix.free.Set(uint(i))
	}
	return ix, nil
}

// Rows returns the grid row count n.
func (ix *Indexer) Rows() int { return ix.rows }

// Cols returns the grid column count m.
func (ix *Indexer) Cols() int { return ix.cols }

// Width returns k, the bits per cell.
func (ix *Indexer) Width() int { return ix.width }

// Data returns the address of bit b of cell (i,j). Bit 0 is the least
// significant. It panics if the cell or bit index is out of range.
func (ix *Indexer) Data(i, j, b int) int {
	ix.checkCell(i, j)
	if b < 0 || b >= ix.width {
		panic(fmt.Sprintf("indexer: bit index %d out of [0,%d)", b, ix.width))
	}
	return ix.baseData + (i*ix.cols+j)*ix.width + b
}

// CellBits returns the k contiguous addresses of cell (i,j), low bit
// first. It panics if the cell index is out of range.
func (ix *Indexer) CellBits(i, j int) []int {
	ix.checkCell(i, j)
	base := ix.baseData + (i*ix.cols+j)*ix.width
	out := make([]int, ix.width)
	for b := range out {
		out[b] = base + b
	}
	return out
}

// RowFlag returns the address of the row-uniqueness flag. The oracle
// sets it when some row contains a repeated symbol.
func (ix *Indexer) RowFlag() int { return ix.flagRow }

// ColFlag returns the address of the column-uniqueness flag.
func (ix *Indexer) ColFlag() int { return ix.flagCol }

// CellValidFlag returns the address of the cell-bound flag. The oracle
// sets it when some cell holds a symbol at or above the bound.
func (ix *Indexer) CellValidFlag() int { return ix.flagCell }

// GlobalFlag returns the address of the global validity flag, set by
// the oracle exactly when every constraint is satisfied.
func (ix *Indexer) GlobalFlag() int { return ix.flagGlobal }

// TotalBits returns the full register size: data + flags + pool.
func (ix *Indexer) TotalBits() int { return ix.total }

// PoolSize returns the ancilla pool capacity.
func (ix *Indexer) PoolSize() int { return ix.poolSize }

// FreeAncillas returns how many pool addresses are currently free.
func (ix *Indexer) FreeAncillas() int { return int(ix.free.Count()) }

// Reserve removes count free ancillas from the pool and returns their
// addresses in ascending order.
func (ix *Indexer) Reserve(count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if free := ix.FreeAncillas(); free < count {
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrExhausted, count, free)
	}

	out := make([]int, 0, count)
	for i, ok := ix.free.NextSet(0); ok && len(out) < count; i, ok = ix.free.NextSet(i + 1) {
		ix.free.Clear(i)
		out = append(out, ix.basePool+int(i))
	}
	return out, nil
}

// Release returns previously reserved ancillas to the pool. The whole
// batch is validated before any address is freed, so a failed release
// leaves the free-set untouched.
func (ix *Indexer) Release(addrs []int) error {
	seen := make(map[int]bool, len(addrs))
	for _, a := range addrs {
		if a < ix.basePool || a >= ix.total {
			return fmt.Errorf("%w: address %d", ErrNotAncilla, a)
		}
		rel := uint(a - ix.basePool)
		if ix.free.Test(rel) || seen[a] {
			return fmt.Errorf("%w: address %d", ErrAlreadyFree, a)
		}
		seen[a] = true
	}
	for _, a := range addrs {
		ix.free.Set(uint(a - ix.basePool))
	}
	return nil
}

// Label returns a human-readable name for an address, for logs and
// debugging output.
func (ix *Indexer) Label(addr int) string {
	switch {
	case addr < 0 || addr >= ix.total:
		return fmt.Sprintf("<out-of-range %d>", addr)
	case addr < ix.flagRow:
		cell, bit := (addr-ix.baseData)/ix.width, (addr-ix.baseData)%ix.width
		return fmt.Sprintf("data(%d,%d,%d)", cell/ix.cols, cell%ix.cols, bit)
	case addr == ix.flagRow:
		return "rowFlag"
	case addr == ix.flagCol:
		return "colFlag"
	case addr == ix.flagCell:
		return "cellValidFlag"
	case addr == ix.flagGlobal:
		return "globalFlag"
	default:
		return fmt.Sprintf("ancilla(%d)", addr-ix.basePool)
	}
}

func (ix *Indexer) checkCell(i, j int) {
	if i < 0 || i >= ix.rows || j < 0 || j >= ix.cols {
		panic(fmt.Sprintf("indexer: cell (%d,%d) out of %dx%d grid", i, j, ix.rows, ix.cols))
	}
}
