package gridoracle

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/grover"
	"github.com/hupe1980/gridoracle/indexer"
	"github.com/hupe1980/gridoracle/oracle"
)

var (
	// ErrInvalidGrid wraps every grid-validation failure: ragged rows,
	// out-of-range symbols, or duplicate pre-filled symbols.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrResourceExhausted wraps an ancilla reservation that the pool
	// cannot satisfy; fix by compiling with a larger WithAncillas.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrInvalidState wraps ancilla-release violations: releasing an
	// address outside the pool or one that is already free.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument wraps caller errors: negative counts, register
	// width mismatches, or a non-positive solution count.
	ErrInvalidArgument = errors.New("invalid argument")
)

// translateError maps subpackage errors onto the package's public
// error surface so callers can branch with errors.Is against the four
// construction-time failure kinds.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ragged *grid.ErrRaggedRow
	var rng *grid.ErrSymbolRange
	var dup *grid.ErrDuplicateSymbol
	if errors.Is(err, grid.ErrEmpty) || errors.As(err, &ragged) || errors.As(err, &rng) || errors.As(err, &dup) {
		return fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	if errors.Is(err, indexer.ErrExhausted) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}
	if errors.Is(err, indexer.ErrNotAncilla) || errors.Is(err, indexer.ErrAlreadyFree) {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if errors.Is(err, indexer.ErrNegativeCount) ||
		errors.Is(err, oracle.ErrWidthMismatch) ||
		errors.Is(err, oracle.ErrBoundRange) ||
		errors.Is(err, grover.ErrNoSolutions) ||
		errors.Is(err, grover.ErrNoBlanks) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
