// Package grover appends amplitude-amplification rounds around the
// validity oracle and derives the optimal round count from the ratio
// of search-space size to known solutions.
//
// A round is oracle, phase flip on the set global flag, oracle inverse,
// then diffusion over the data bits of blank cells only; pre-filled
// cells are never perturbed.
package grover
