// Package gate defines the reversible-gate intermediate representation
// produced by the circuit builders.
//
// The gate set is deliberately small: X, H, Z, and a multi-controlled X
// with an arbitrary per-control match state. Every gate in the set is
// its own inverse, so the inverse of a recorded Sequence is simply the
// same gates replayed in reverse order. Builders exploit this to derive
// uncompute phases mechanically instead of re-invoking construction
// code with hand-matched arguments.
package gate
