package oracle

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gridoracle/gate"
)

// ErrWidthMismatch is returned when register widths passed to a
// primitive do not line up.
var ErrWidthMismatch = errors.New("register width mismatch")

// ErrBoundRange is returned when a comparison bound cannot be encoded
// in the given width.
var ErrBoundRange = errors.New("bound not encodable in register width")

// PrepareBound records X gates loading the two's-complement constant
// 2^width - bound into scratch[0:width]. scratch[width] and
// scratch[width+1] are the comparator's carry bits and stay untouched.
// The emitted gates are self-inverse, so a second identical call
// unloads the constant.
func PrepareBound(seq *gate.Sequence, scratch []int, bound, width int) error {
	if len(scratch) < width+2 {
		return fmt.Errorf("%w: need %d scratch bits, got %d", ErrWidthMismatch, width+2, len(scratch))
	}
	if bound < 1 || bound > 1<<uint(width) {
		return fmt.Errorf("%w: bound %d, width %d", ErrBoundRange, bound, width)
	}
	constant := 1<<uint(width) - bound
	for i := 0; i < width; i++ {
		if constant>>uint(i)&1 == 1 {
			seq.Append(gate.X(scratch[i]))
		}
	}
	return nil
}

// LessThan flips target exactly when the unsigned value in data is
// greater than or equal to the bound previously loaded into scratch by
// PrepareBound. It rides on a ripple-carry adder: adding data to the
// pre-complemented constant overflows precisely when data >= bound.
// The carry is copied out and the adder replayed in reverse, so data
// and scratch are bit-for-bit untouched on exit.
//
// scratch layout: [0:k) constant, k carry-out, k+1 carry-in. Two calls
// with identical arguments are the identity.
func LessThan(seq *gate.Sequence, data, scratch []int, target int) error {
	k := len(data)
	if k == 0 || len(scratch) != k+2 {
		return fmt.Errorf("%w: %d data bits, %d scratch bits", ErrWidthMismatch, k, len(scratch))
	}

	add := gate.NewSequence()
	rippleCarry(add, data, scratch[:k], scratch[k], scratch[k+1])

	seq.Extend(add)
	seq.Append(gate.CX(scratch[k], target))
	seq.Extend(add.Inverse())
	return nil
}

// rippleCarry records the Cuccaro MAJ/UMA ripple-carry adder:
// b := a + b (mod 2^k), carryOut ^= overflow, a and carryIn unchanged.
// carryIn must be zero for the sum to be a + b.
func rippleCarry(seq *gate.Sequence, a, b []int, carryOut, carryIn int) {
	maj := func(c, bi, ai int) {
		seq.Append(gate.CX(ai, bi), gate.CX(ai, c), gate.CCX(c, bi, ai))
	}
	uma := func(c, bi, ai int) {
		seq.Append(gate.CCX(c, bi, ai), gate.CX(ai, c), gate.CX(c, bi))
	}

	carry := carryIn
	for i := range a {
		maj(carry, b[i], a[i])
		carry = a[i]
	}
	seq.Append(gate.CX(a[len(a)-1], carryOut))
	for i := len(a) - 1; i >= 0; i-- {
		c := carryIn
		if i > 0 {
			c = a[i-1]
		}
		uma(c, b[i], a[i])
	}
}

// Equal flips target exactly when the k-bit registers a and b hold the
// same value: XNOR each bit pair into scratch, AND the k scratch bits
// into target, then replay the XNOR stage in reverse. Inputs and
// scratch are untouched on exit; two identical calls are the identity.
func Equal(seq *gate.Sequence, a, b, scratch []int, target int) error {
	k := len(a)
	if k == 0 || len(b) != k || len(scratch) < k {
		return fmt.Errorf("%w: a=%d b=%d scratch=%d", ErrWidthMismatch, len(a), len(b), len(scratch))
	}

	xnor := gate.NewSequence()
	for i := 0; i < k; i++ {
		xnor.Append(gate.CX(a[i], scratch[i]), gate.CX(b[i], scratch[i]), gate.X(scratch[i]))
	}

	seq.Extend(xnor)
	seq.Append(gate.MCX(scratch[:k], target))
	seq.Extend(xnor.Inverse())
	return nil
}

// flipIfAny flips target exactly when at least one input bit is set:
// a reversible OR, realized as an all-clear-controlled flip followed by
// an unconditional flip. With no inputs it is a net no-op.
func flipIfAny(seq *gate.Sequence, inputs []int, target int) {
	seq.Append(gate.MCXState(inputs, 0, target), gate.X(target))
}

// flipIfNone flips target exactly when every input bit is clear: the
// AND of the inputs' complements.
func flipIfNone(seq *gate.Sequence, inputs []int, target int) {
	seq.Append(gate.MCXState(inputs, 0, target))
}
