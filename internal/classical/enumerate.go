package classical

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Enumerate runs seq once for every assignment of the target bits,
// fanning the 2^len(targets) basis states out over GOMAXPROCS workers.
// Each visit receives the assignment (bit i of assign corresponds to
// targets[i]) and the final state; visit is called concurrently and
// must synchronize its own bookkeeping.
func Enumerate(ctx context.Context, width int, targets []int, run func(s *State) error, visit func(assign uint64, s *State) error) error {
	total := uint64(1) << uint(len(targets))
	workers := uint64(runtime.GOMAXPROCS(0))
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := uint64(0); w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		g.Go(func() error {
			for assign := lo; assign < hi; assign++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s := NewState(width)
				for i, t := range targets {
					s.Set(t, assign>>uint(i)&1 == 1)
				}
				if err := run(s); err != nil {
					return err
				}
				if err := visit(assign, s); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
