// Package bench times change-making solvers across a range of target
// amounts and compares the coins they spend.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gitrdm/gochange/internal/parallel"
	"github.com/gitrdm/gochange/pkg/coinchange"
)

var (
	// ErrInvalidSweep reports a malformed range or repeat count.
	ErrInvalidSweep = errors.New("invalid sweep")
	// ErrAmountTooLarge reports an amount above the configured ceiling.
	// The exact solver allocates O(amount) memory, so the harness refuses
	// to go past MaxAmount.
	ErrAmountTooLarge = errors.New("amount exceeds ceiling")
)

// DefaultMaxAmount is the amount ceiling used when none is configured.
const DefaultMaxAmount = 1_000_000

// Option configures Sweep and CompareRange.
type Option func(*sweepConfig)

type sweepConfig struct {
	from, to, step int
	repeats        int
	workers        int
	maxAmount      int
}

func defaultSweepConfig() sweepConfig {
	return sweepConfig{
		from:      1,
		to:        1000,
		step:      50,
		repeats:   20,
		workers:   1,
		maxAmount: DefaultMaxAmount,
	}
}

// WithRange sets the swept amounts: from, from+step, ... up to and
// including to when it lands on the grid.
func WithRange(from, to, step int) Option {
	return func(c *sweepConfig) { c.from, c.to, c.step = from, to, step }
}

// WithRepeats sets how many times each solver is invoked per amount. The
// reported time is the average over the batch.
func WithRepeats(n int) Option {
	return func(c *sweepConfig) { c.repeats = n }
}

// WithWorkers runs sweep points concurrently. The default of 1 keeps timings
// free of scheduler contention; values <= 0 use every CPU.
func WithWorkers(n int) Option {
	return func(c *sweepConfig) { c.workers = n }
}

// WithMaxAmount sets the amount ceiling.
func WithMaxAmount(n int) Option {
	return func(c *sweepConfig) { c.maxAmount = n }
}

func (c sweepConfig) validate(op string) error {
	if c.from < 0 {
		return fmt.Errorf("%s: %w: from must be non-negative, got %d", op, ErrInvalidSweep, c.from)
	}
	if c.to < c.from {
		return fmt.Errorf("%s: %w: to (%d) is below from (%d)", op, ErrInvalidSweep, c.to, c.from)
	}
	if c.step <= 0 {
		return fmt.Errorf("%s: %w: step must be positive, got %d", op, ErrInvalidSweep, c.step)
	}
	if c.repeats <= 0 {
		return fmt.Errorf("%s: %w: repeats must be positive, got %d", op, ErrInvalidSweep, c.repeats)
	}
	if c.maxAmount > 0 && c.to > c.maxAmount {
		return fmt.Errorf("%s: %w: %d > %d", op, ErrAmountTooLarge, c.to, c.maxAmount)
	}
	return nil
}

func (c sweepConfig) amounts() []int {
	amounts := make([]int, 0, (c.to-c.from)/c.step+1)
	for a := c.from; a <= c.to; a += c.step {
		amounts = append(amounts, a)
	}
	return amounts
}

// Series holds one solver's measurements, indexed like Report.Amounts.
type Series struct {
	Solver  string
	PerCall []time.Duration
	Results []coinchange.Result
}

// Mean returns the average per-call time over the whole sweep.
func (s Series) Mean() time.Duration {
	if len(s.PerCall) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.PerCall {
		total += d
	}
	return total / time.Duration(len(s.PerCall))
}

// Max returns the slowest per-call time in the sweep.
func (s Series) Max() time.Duration {
	var longest time.Duration
	for _, d := range s.PerCall {
		if d > longest {
			longest = d
		}
	}
	return longest
}

// Report is the outcome of a Sweep.
type Report struct {
	Denominations []int
	Amounts       []int
	Repeats       int
	Series        []Series
	Elapsed       time.Duration
}

// Lookup returns the series recorded for the named solver.
func (r *Report) Lookup(solver string) (Series, bool) {
	for _, s := range r.Series {
		if s.Solver == solver {
			return s, true
		}
	}
	return Series{}, false
}

// GreedyLosses returns the swept amounts where greedy spent more coins than
// exact, or could not cover an amount exact could. Both solvers must be
// part of the report.
func (r *Report) GreedyLosses() []int {
	greedy, ok := r.Lookup(coinchange.GreedySolver{}.Name())
	if !ok {
		return nil
	}
	exact, ok := r.Lookup(coinchange.ExactSolver{}.Name())
	if !ok {
		return nil
	}
	var losses []int
	for i, amount := range r.Amounts {
		if coinchange.Loses(greedy.Results[i], exact.Results[i]) {
			losses = append(losses, amount)
		}
	}
	return losses
}

// Sweep invokes every solver Repeats times per swept amount and records the
// average wall time per call together with the solver's last result.
//
// Points are distributed over a worker pool; each point writes only its own
// index of the pre-sized series slices. Solvers run one after another within
// a point so they never compete for the same worker.
func Sweep(ctx context.Context, denominations []int, solvers []coinchange.Solver, opts ...Option) (*Report, error) {
	cfg := defaultSweepConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if err := cfg.validate("Sweep"); err != nil {
		return nil, err
	}
	if len(solvers) == 0 {
		return nil, fmt.Errorf("Sweep: %w: no solvers", ErrInvalidSweep)
	}
	if err := coinchange.Validate(denominations, cfg.from); err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}

	amounts := cfg.amounts()
	report := &Report{
		Denominations: append([]int(nil), denominations...),
		Amounts:       amounts,
		Repeats:       cfg.repeats,
		Series:        make([]Series, len(solvers)),
	}
	for j, s := range solvers {
		report.Series[j] = Series{
			Solver:  s.Name(),
			PerCall: make([]time.Duration, len(amounts)),
			Results: make([]coinchange.Result, len(amounts)),
		}
	}

	pool := parallel.NewWorkerPool(cfg.workers)
	defer pool.Shutdown()
	tracef("sweep: %d amounts in [%d, %d] step %d, %d solvers, %d repeats, %d workers",
		len(amounts), cfg.from, cfg.to, cfg.step, len(solvers), cfg.repeats, pool.Workers())

	// One slot per point; caller-supplied solvers may still fail.
	errs := make([]error, len(amounts))
	start := time.Now()
	err := pool.ForEach(ctx, len(amounts), func(i int) {
		amount := amounts[i]
		for j, s := range solvers {
			var res coinchange.Result
			t0 := time.Now()
			for r := 0; r < cfg.repeats; r++ {
				out, err := s.Solve(denominations, amount)
				if err != nil {
					errs[i] = fmt.Errorf("Sweep: %s(%d): %w", s.Name(), amount, err)
					return
				}
				res = out
			}
			report.Series[j].PerCall[i] = time.Since(t0) / time.Duration(cfg.repeats)
			report.Series[j].Results[i] = res
		}
		tracef("sweep: amount %d done", amount)
	})
	report.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	tracef("sweep: finished in %v", report.Elapsed)
	return report, nil
}
