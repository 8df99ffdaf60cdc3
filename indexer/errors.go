package indexer

import "errors"

var (
	// ErrExhausted is returned when a reservation asks for more
	// ancillas than remain free. This is a sizing bug in the caller;
	// the pool must be grown at construction time.
	ErrExhausted = errors.New("ancilla pool exhausted")

	// ErrNegativeCount is returned for a negative reservation size.
	ErrNegativeCount = errors.New("ancilla count must not be negative")

	// ErrNotAncilla is returned when a release names an address outside
	// the ancilla pool.
	ErrNotAncilla = errors.New("address is not in the ancilla pool")

	// ErrAlreadyFree is returned when a release names an address that
	// is already free. A double release means a compute/uncompute pair
	// diverged; construction must stop rather than continue with a
	// corrupted free-set.
	ErrAlreadyFree = errors.New("ancilla already free")
)
