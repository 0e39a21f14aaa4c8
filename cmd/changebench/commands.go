package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gitrdm/gochange/internal/bench"
	"github.com/gitrdm/gochange/internal/config"
	"github.com/gitrdm/gochange/internal/plot"
	"github.com/gitrdm/gochange/internal/render"
	"github.com/gitrdm/gochange/pkg/coinchange"
)

// run dispatches CLI subcommands.
func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printHelp(out)
		return nil
	}
	switch args[0] {
	case "solve":
		return runSolve(cfg, args[1:], out)
	case "bench":
		return runBench(ctx, cfg, args[1:], out)
	case "audit":
		return runAudit(ctx, cfg, args[1:], out)
	case "version":
		return runVersion(args[1:], out)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `changebench: greedy vs dynamic-programming change making

Commands:
  solve  [-d 50,25,10,5,2,1] [-a 113]
         Make change for one amount with both solvers.
  bench  [-d ...] [-from 1] [-to 1000] [-step 50] [-repeats 20] [-workers 1] [-png chart.png]
         Time both solvers across a sweep of amounts.
  audit  [-d ...] [-to N] [-workers N]
         Find the smallest amount where greedy is not optimal; with -to,
         list every such amount in 1..N.
  version [-json]
         Print the solver version.

Flags default to GOCHANGE_* environment variables (optionally from .env).`)
}

// denominationsFlag lets -d accept "50,25,10" and default from config.
type denominationsFlag struct{ values []int }

func (f *denominationsFlag) String() string {
	parts := make([]string, len(f.values))
	for i, v := range f.values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

func (f *denominationsFlag) Set(s string) error {
	d, err := config.ParseDenominations(s)
	if err != nil {
		return err
	}
	f.values = d
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func runSolve(cfg config.Config, args []string, out io.Writer) error {
	fs := newFlagSet("solve", out)
	denominations := &denominationsFlag{values: cfg.Denominations}
	fs.Var(denominations, "d", "comma-separated denominations")
	amount := fs.Int("a", cfg.Amount, "target amount")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.MaxAmount > 0 && *amount > cfg.MaxAmount {
		return fmt.Errorf("solve: %w: %d > %d", bench.ErrAmountTooLarge, *amount, cfg.MaxAmount)
	}

	var rows []render.Row
	for _, s := range coinchange.Solvers() {
		res, err := s.Solve(denominations.values, *amount)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		rows = append(rows, render.Row{Solver: s.Name(), Result: res})
	}
	fmt.Fprintln(out, render.Solve(denominations.values, *amount, rows))
	return nil
}

func runBench(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	fs := newFlagSet("bench", out)
	denominations := &denominationsFlag{values: cfg.Denominations}
	fs.Var(denominations, "d", "comma-separated denominations")
	from := fs.Int("from", cfg.Bench.From, "first swept amount")
	to := fs.Int("to", cfg.Bench.To, "last swept amount")
	step := fs.Int("step", cfg.Bench.Step, "distance between swept amounts")
	repeats := fs.Int("repeats", cfg.Bench.Repeats, "invocations averaged per amount")
	workers := fs.Int("workers", cfg.Bench.Workers, "concurrent sweep points (0 = all CPUs)")
	pngPath := fs.String("png", "", "write a PNG chart to this path")
	width := fs.Int("width", 40, "terminal bar width")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := bench.Sweep(ctx, denominations.values, coinchange.Solvers(),
		bench.WithRange(*from, *to, *step),
		bench.WithRepeats(*repeats),
		bench.WithWorkers(*workers),
		bench.WithMaxAmount(cfg.MaxAmount),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, render.Chart(report, *width))
	fmt.Fprintln(out, render.Summary(report))

	if *pngPath != "" {
		if err := writeChart(*pngPath, report); err != nil {
			return err
		}
		fmt.Fprintf(out, "chart written to %s\n", *pngPath)
	}
	return nil
}

func writeChart(path string, report *bench.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := plot.WritePNG(f, report, plot.Options{}); err != nil {
		f.Close()
		return fmt.Errorf("write chart: %w", err)
	}
	return f.Close()
}

func runAudit(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	fs := newFlagSet("audit", out)
	denominations := &denominationsFlag{values: cfg.Denominations}
	fs.Var(denominations, "d", "comma-separated denominations")
	to := fs.Int("to", 0, "also list every losing amount in 1..to")
	workers := fs.Int("workers", 0, "concurrent greedy runs (0 = all CPUs)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := coinchange.Validate(denominations.values, 0); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	if bound := coinchange.CounterexampleBound(denominations.values); cfg.MaxAmount > 0 && bound > cfg.MaxAmount {
		return fmt.Errorf("audit: %w: search bound %d > %d", bench.ErrAmountTooLarge, bound, cfg.MaxAmount)
	}

	ce, found, err := coinchange.FindCounterexample(denominations.values)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	var losses []coinchange.Counterexample
	if *to > 0 {
		losses, err = bench.CompareRange(ctx, denominations.values,
			bench.WithRange(1, *to, 1),
			bench.WithWorkers(*workers),
			bench.WithMaxAmount(cfg.MaxAmount),
		)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(out, render.Audit(denominations.values, ce, found, losses, *to))
	return nil
}

func runVersion(args []string, out io.Writer) error {
	fs := newFlagSet("version", out)
	asJSON := fs.Bool("json", false, "print build details as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*asJSON {
		fmt.Fprintln(out, "changebench", coinchange.GetVersion())
		return nil
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(coinchange.GetVersionInfo())
}
