package classical

import (
	"context"

	"github.com/hupe1980/gridoracle/engine"
	"github.com/hupe1980/gridoracle/gate"
)

// Runner is a deterministic engine.Runner for classical circuits: it
// evolves the all-zero state through the sequence once and reports the
// single resulting outcome for every shot. Sequences containing
// Hadamard gates are rejected with ErrNonClassical.
type Runner struct{}

var _ engine.Runner = Runner{}

// Run implements engine.Runner.
func (Runner) Run(ctx context.Context, seq *gate.Sequence, bits, shots int) (engine.Counts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := NewState(bits)
	if err := s.Run(seq); err != nil {
		return nil, err
	}
	return engine.Counts{s.Bitstring(): shots}, nil
}
