// Command changebench compares greedy and dynamic-programming change making:
// it solves single amounts, benchmarks both solvers over a sweep of amounts
// and audits coin systems for greedy counterexamples.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gitrdm/gochange/internal/bench"
	"github.com/gitrdm/gochange/internal/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("GOCHANGE_ENV_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Trace {
		bench.SetTrace(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
