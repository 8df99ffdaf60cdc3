package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/gridoracle/grid"
	"github.com/hupe1980/gridoracle/indexer"
)

// Outcome is one grid configuration with its aggregated frequency.
type Outcome struct {
	// Cells holds the decoded cell values in row-major order.
	Cells []int
	// Count is the summed frequency over all raw outcomes that decode
	// to these cell values.
	Count int
}

// Format renders the outcome's cells as a grid table.
func (o Outcome) Format(rows, cols int) string {
	return fmt.Sprintf("count = %d\n%s", o.Count, grid.FormatValues(o.Cells, rows, cols))
}

// Aggregate folds raw full-register counts into per-grid-configuration
// counts by re-deriving each cell value from its k contiguous data bits
// (bit 0 least significant) and discarding flag and ancilla bits.
// Outcomes are sorted by descending count, then by cell values.
func Aggregate(counts Counts, ix *indexer.Indexer) ([]Outcome, error) {
	n, m, k := ix.Rows(), ix.Cols(), ix.Width()

	grouped := make(map[string]*Outcome)
	for bitstr, count := range counts {
		if len(bitstr) != ix.TotalBits() {
			return nil, fmt.Errorf("outcome %q has %d bits, register has %d", bitstr, len(bitstr), ix.TotalBits())
		}
		cells := make([]int, 0, n*m)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				v := 0
				for b := 0; b < k; b++ {
					if bitstr[ix.Data(i, j, b)] == '1' {
						v |= 1 << uint(b)
					}
				}
				cells = append(cells, v)
			}
		}
		key := cellKey(cells)
		if o, ok := grouped[key]; ok {
			o.Count += count
		} else {
			grouped[key] = &Outcome{Cells: cells, Count: count}
		}
	}

	out := make([]Outcome, 0, len(grouped))
	for _, o := range grouped {
		out = append(out, *o)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return cellKey(out[a].Cells) < cellKey(out[b].Cells)
	})
	return out, nil
}

func cellKey(cells []int) string {
	parts := make([]string, len(cells))
	for i, v := range cells {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}
