package gate

// Sequence is an append-only ordered list of gates.
//
// Sub-circuit builders record into a Sequence and splice recorded
// sub-sequences (or their inverses) into a parent. Gates are treated as
// immutable once appended; Inverse and Gates share the underlying gate
// values without copying control slices.
type Sequence struct {
	gates []Gate
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds gates to the end of the sequence.
func (s *Sequence) Append(gates ...Gate) {
	s.gates = append(s.gates, gates...)
}

// Extend appends every gate of other, in order.
func (s *Sequence) Extend(other *Sequence) {
	s.gates = append(s.gates, other.gates...)
}

// Len returns the number of gates recorded so far.
func (s *Sequence) Len() int {
	return len(s.gates)
}

// Gates returns the recorded gates in application order. The returned
// slice must not be mutated.
func (s *Sequence) Gates() []Gate {
	return s.gates
}

// Inverse returns a new sequence that undoes s. Because every gate in
// the IR is self-inverse, the inverse is the same gates in reverse
// order.
func (s *Sequence) Inverse() *Sequence {
	inv := make([]Gate, len(s.gates))
	for i, g := range s.gates {
		inv[len(s.gates)-1-i] = g
	}
	return &Sequence{gates: inv}
}

// CountKind returns how many gates of the given kind the sequence holds.
func (s *Sequence) CountKind(k Kind) int {
	count := 0
	for _, g := range s.gates {
		if g.Kind == k {
			count++
		}
	}
	return count
}
