// Package classical evaluates the classical-reversible subset of the
// gate IR (X, CX, MCX; Z is basis-state preserving) over plain bit
// registers. It backs the exhaustive truth-table tests and provides a
// deterministic reference Runner for circuits without Hadamard gates.
package classical

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/gridoracle/gate"
)

// ErrNonClassical is returned when a sequence contains a gate with no
// classical interpretation (Hadamard).
var ErrNonClassical = errors.New("sequence contains a non-classical gate")

// State is one basis state of a width-bit register.
type State struct {
	bits  *bitset.BitSet
	width int
}

// NewState returns the all-zero state of the given width.
func NewState(width int) *State {
	return &State{bits: bitset.New(uint(width)), width: width}
}

// Width returns the register width.
func (s *State) Width() int { return s.width }

// Get returns the bit at addr.
func (s *State) Get(addr int) bool {
	return s.bits.Test(uint(addr))
}

// Set forces the bit at addr to v.
func (s *State) Set(addr int, v bool) {
	s.bits.SetTo(uint(addr), v)
}

// SetValue writes v across addrs, lowest bit first.
func (s *State) SetValue(addrs []int, v uint64) {
	for i, a := range addrs {
		s.Set(a, v>>uint(i)&1 == 1)
	}
}

// Value reads the unsigned value held across addrs, lowest bit first.
func (s *State) Value(addrs []int) uint64 {
	var v uint64
	for i, a := range addrs {
		if s.Get(a) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	return &State{bits: s.bits.Clone(), width: s.width}
}

// Equal reports whether two states agree on every bit.
func (s *State) Equal(other *State) bool {
	return s.width == other.width && s.bits.Equal(other.bits)
}

// Bitstring renders the state with byte i holding bit address i.
func (s *State) Bitstring() string {
	out := make([]byte, s.width)
	for i := range out {
		if s.Get(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// Apply applies a single gate to the state.
func (s *State) Apply(g gate.Gate) error {
	switch g.Kind {
	case gate.KindX:
		s.bits.Flip(uint(g.Target))
	case gate.KindZ:
		// Diagonal: phase only, basis state unchanged.
	case gate.KindMCX:
		match := true
		for i, c := range g.Controls {
			if s.Get(c) != (g.CtrlState>>uint(i)&1 == 1) {
				match = false
				break
			}
		}
		if match {
			s.bits.Flip(uint(g.Target))
		}
	case gate.KindH:
		return fmt.Errorf("%w: hadamard on bit %d", ErrNonClassical, g.Target)
	default:
		return fmt.Errorf("unknown gate kind %v", g.Kind)
	}
	return nil
}

// Run applies every gate of seq in order.
func (s *State) Run(seq *gate.Sequence) error {
	for _, g := range seq.Gates() {
		if err := s.Apply(g); err != nil {
			return err
		}
	}
	return nil
}
