package gate

import "fmt"

// Kind identifies the elementary gate type.
type Kind uint8

const (
	// KindX is the bit-flip gate.
	KindX Kind = iota
	// KindH is the Hadamard gate. It has no classical interpretation
	// and is rejected by classical evaluation.
	KindH
	// KindZ is the phase-flip gate. It is diagonal, so it preserves
	// every basis state.
	KindZ
	// KindMCX is a multi-controlled X. The target is flipped exactly
	// when every control bit matches its position in CtrlState.
	KindMCX
)

// String returns a short mnemonic for the gate kind.
func (k Kind) String() string {
	switch k {
	case KindX:
		return "x"
	case KindH:
		return "h"
	case KindZ:
		return "z"
	case KindMCX:
		return "mcx"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Gate is one elementary reversible operation on a flat bit register.
//
// Controls and CtrlState are only meaningful for KindMCX: bit i of
// CtrlState is the value Controls[i] must hold for the target to flip.
// At most 64 controls are supported, far beyond anything the oracle
// builders emit.
//
// Every Gate is self-inverse: applying the same gate twice is the
// identity.
type Gate struct {
	Kind      Kind
	Controls  []int
	CtrlState uint64
	Target    int
}

// X returns a bit-flip gate on target.
func X(target int) Gate {
	return Gate{Kind: KindX, Target: target}
}

// H returns a Hadamard gate on target.
func H(target int) Gate {
	return Gate{Kind: KindH, Target: target}
}

// Z returns a phase-flip gate on target.
func Z(target int) Gate {
	return Gate{Kind: KindZ, Target: target}
}

// CX returns a controlled X: target flips when control is set.
func CX(control, target int) Gate {
	return Gate{Kind: KindMCX, Controls: []int{control}, CtrlState: 1, Target: target}
}

// CCX returns a Toffoli gate: target flips when both controls are set.
func CCX(c0, c1, target int) Gate {
	return Gate{Kind: KindMCX, Controls: []int{c0, c1}, CtrlState: 3, Target: target}
}

// MCX returns a multi-controlled X that fires when every control is set.
// With no controls it degenerates to an unconditional X, which is what
// the diffusion operator relies on for single-bit registers.
func MCX(controls []int, target int) Gate {
	return MCXState(controls, allOnes(len(controls)), target)
}

// MCXState returns a multi-controlled X that fires when control i holds
// bit i of ctrlState. ctrlState zero therefore fires on all-clear
// controls, the building block of the reversible OR pattern.
func MCXState(controls []int, ctrlState uint64, target int) Gate {
	if len(controls) > 64 {
		panic(fmt.Sprintf("gate: %d controls exceed the 64-control limit", len(controls)))
	}
	return Gate{Kind: KindMCX, Controls: controls, CtrlState: ctrlState, Target: target}
}

func allOnes(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (1 << uint(n)) - 1
}
