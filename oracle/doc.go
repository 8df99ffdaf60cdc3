// Package oracle builds the reversible constraint-checking circuits:
// comparator primitives, the three Bennett-style sub-circuits (cell
// bound, row uniqueness, column uniqueness), and the composer that
// collapses their flags into the single global validity bit.
//
// Every builder follows the same protocol: reserve ancillas, record a
// compute sweep, splice the sweep in, fold its result into a flag, then
// splice the sweep's gate-level inverse so every intermediate bit
// returns to zero before the ancillas are released. The free-ancilla
// set is identical before and after every builder call.
package oracle
