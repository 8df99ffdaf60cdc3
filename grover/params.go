package grover

import (
	"fmt"
	"math"

	"github.com/hupe1980/gridoracle/grid"
)

// SearchSpace returns N, the number of basis states spanned by the
// blank cells: 2^(blanks · k). Returned as float64 because only the
// ratio N/M feeds the round formula.
func SearchSpace(g *grid.Grid) float64 {
	return math.Exp2(float64(g.Blanks() * g.BitWidth()))
}

// OptimalRounds returns floor((π/4)·sqrt(N/M)) for search-space size
// space and solution count solutions. A non-positive solution count is
// a caller error and fails fast.
func OptimalRounds(space float64, solutions int) (int, error) {
	if solutions <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNoSolutions, solutions)
	}
	if space < 1 {
		return 0, fmt.Errorf("invalid search-space size %v", space)
	}
	return int(math.Floor(math.Pi / 4 * math.Sqrt(space/float64(solutions)))), nil
}
