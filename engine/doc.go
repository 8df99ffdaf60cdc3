// Package engine defines the execution boundary of the compiler: the
// contract an external gate executor has to satisfy, and the decoding
// of raw measurement outcomes back into grid configurations.
//
// The compiler's only obligations to the executor are a closed,
// self-consistent gate sequence and the address map needed to decode
// bit-strings; everything about backends, scheduling, and simulation
// method lives on the other side of the Runner interface.
package engine
