// Package testutil provides testing utilities for gridoracle.
//
// This package is intended for use in tests only. It holds canonical
// fixture puzzles and the classical validity predicate the exhaustive
// oracle tests compare against.
package testutil
