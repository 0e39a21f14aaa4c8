package bench

import (
	"context"
	"fmt"

	"github.com/gitrdm/gochange/internal/parallel"
	"github.com/gitrdm/gochange/pkg/coinchange"
)

// CompareRange checks every amount in from..to (the range from WithRange;
// step is ignored) and returns each amount where greedy loses to the exact
// solver, in ascending order.
//
// The exact side is solved with one shared table; the greedy runs and the
// comparisons are spread over the worker pool.
func CompareRange(ctx context.Context, denominations []int, opts ...Option) ([]coinchange.Counterexample, error) {
	cfg := defaultSweepConfig()
	cfg.workers = 0
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	cfg.step = 1
	if err := cfg.validate("CompareRange"); err != nil {
		return nil, err
	}

	exact, err := coinchange.ExactRange(denominations, cfg.from, cfg.to)
	if err != nil {
		return nil, fmt.Errorf("CompareRange: %w", err)
	}

	n := cfg.to - cfg.from + 1
	greedy := make([]coinchange.Result, n)
	errs := make([]error, n)

	pool := parallel.NewWorkerPool(cfg.workers)
	defer pool.Shutdown()
	tracef("audit: %d amounts in [%d, %d] on %d workers", n, cfg.from, cfg.to, pool.Workers())

	if err := pool.ForEach(ctx, n, func(i int) {
		greedy[i], errs[i] = coinchange.Greedy(denominations, cfg.from+i)
	}); err != nil {
		return nil, err
	}

	var losses []coinchange.Counterexample
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			return nil, fmt.Errorf("CompareRange: %w", errs[i])
		}
		if coinchange.Loses(greedy[i], exact[i]) {
			losses = append(losses, coinchange.Counterexample{
				Amount: cfg.from + i,
				Greedy: greedy[i],
				Exact:  exact[i],
			})
		}
	}
	tracef("audit: %d losses", len(losses))
	return losses, nil
}
