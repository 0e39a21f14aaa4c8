package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gitrdm/gochange/pkg/coinchange"
)

func TestSweep_RecordsEveryPoint(t *testing.T) {
	report, err := Sweep(context.Background(), []int{1, 3, 4}, coinchange.Solvers(),
		WithRange(0, 20, 3), WithRepeats(2), WithWorkers(3))
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	wantAmounts := []int{0, 3, 6, 9, 12, 15, 18}
	if len(report.Amounts) != len(wantAmounts) {
		t.Fatalf("amounts = %v, want %v", report.Amounts, wantAmounts)
	}
	for i, a := range wantAmounts {
		if report.Amounts[i] != a {
			t.Fatalf("amounts = %v, want %v", report.Amounts, wantAmounts)
		}
	}
	if len(report.Series) != 2 {
		t.Fatalf("series = %d, want 2", len(report.Series))
	}
	for _, s := range report.Series {
		if len(s.PerCall) != len(wantAmounts) || len(s.Results) != len(wantAmounts) {
			t.Fatalf("%s: %d timings, %d results", s.Solver, len(s.PerCall), len(s.Results))
		}
		for i, r := range s.Results {
			if !r.OK() || r.Solution.Total() != report.Amounts[i] {
				t.Errorf("%s at %d: %v", s.Solver, report.Amounts[i], r)
			}
		}
	}

	exact, ok := report.Lookup("exact")
	if !ok {
		t.Fatal("exact series missing")
	}
	if got := exact.Results[2].Solution; !got.Equal(coinchange.Solution{3: 2}) {
		t.Errorf("exact at 6 = %v, want {3:2}", got)
	}
}

func TestSweep_GreedyLosses(t *testing.T) {
	report, err := Sweep(context.Background(), []int{1, 3, 4}, coinchange.Solvers(),
		WithRange(1, 10, 1), WithRepeats(1))
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	// 6 = 3+3 beats 4+1+1, 10 = 4+3+3 beats 4+4+1+1.
	losses := report.GreedyLosses()
	if len(losses) != 2 || losses[0] != 6 || losses[1] != 10 {
		t.Fatalf("losses = %v, want [6 10]", losses)
	}
}

func TestSweep_Validation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		d       []int
		solvers []coinchange.Solver
		opts    []Option
		wantErr error
	}{
		{"zero step", []int{1}, coinchange.Solvers(), []Option{WithRange(1, 10, 0)}, ErrInvalidSweep},
		{"inverted range", []int{1}, coinchange.Solvers(), []Option{WithRange(10, 1, 1)}, ErrInvalidSweep},
		{"negative from", []int{1}, coinchange.Solvers(), []Option{WithRange(-1, 1, 1)}, ErrInvalidSweep},
		{"zero repeats", []int{1}, coinchange.Solvers(), []Option{WithRepeats(0)}, ErrInvalidSweep},
		{"no solvers", []int{1}, nil, nil, ErrInvalidSweep},
		{"ceiling", []int{1}, coinchange.Solvers(), []Option{WithRange(1, 500, 1), WithMaxAmount(100)}, ErrAmountTooLarge},
		{"bad denominations", []int{0}, coinchange.Solvers(), nil, coinchange.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sweep(ctx, tt.d, tt.solvers, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, []int{1, 2, 5}, coinchange.Solvers(), WithRange(1, 100, 1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

type failingSolver struct{}

func (failingSolver) Name() string { return "failing" }

func (failingSolver) Solve([]int, int) (coinchange.Result, error) {
	return coinchange.Result{}, errors.New("boom")
}

func TestSweep_SolverErrorPropagates(t *testing.T) {
	_, err := Sweep(context.Background(), []int{1}, []coinchange.Solver{failingSolver{}}, WithRange(1, 3, 1))
	if err == nil {
		t.Fatal("expected solver error")
	}
}

func TestSeries_MeanAndMax(t *testing.T) {
	s := Series{PerCall: []time.Duration{1, 2, 6}}
	if s.Mean() != 3 || s.Max() != 6 {
		t.Fatalf("mean = %v, max = %v", s.Mean(), s.Max())
	}
	if (Series{}).Mean() != 0 {
		t.Fatal("empty mean not zero")
	}
}

func TestSweep_Heavy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wide sweep in short mode")
	}
	report, err := Sweep(context.Background(), []int{50, 25, 10, 5, 2, 1}, coinchange.Solvers(),
		WithRange(0, 5000, 250), WithRepeats(3), WithWorkers(0))
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if losses := report.GreedyLosses(); len(losses) != 0 {
		t.Fatalf("canonical set produced greedy losses at %v", losses)
	}
}
