package engine

import (
	"context"

	"github.com/hupe1980/gridoracle/gate"
)

// Counts maps full-register measurement outcomes to observed
// frequencies. Keys are bit-strings of length TotalBits where byte i is
// '0' or '1' for the bit at address i; address order, not the
// most-significant-first convention some toolkits print.
type Counts map[string]int

// Runner executes a compiled gate sequence over a register of bits
// addresses for the given number of repeated trials and reports how
// often each full bit-string outcome was observed.
type Runner interface {
	Run(ctx context.Context, seq *gate.Sequence, bits, shots int) (Counts, error)
}
