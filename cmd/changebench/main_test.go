package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitrdm/gochange/internal/bench"
	"github.com/gitrdm/gochange/internal/config"
	"github.com/gitrdm/gochange/pkg/coinchange"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(context.Background(), config.Defaults(), args, &buf)
	return buf.String(), err
}

func TestRun_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}} {
		out, err := runCLI(t, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if !strings.HasPrefix(out, "changebench: ") || !strings.Contains(out, "Commands:") {
			t.Fatalf("%v: help text missing:\n%s", args, out)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if _, err := runCLI(t, "frobnicate"); err == nil {
		t.Fatal("unknown command accepted")
	}
}

func TestRun_SolveDefaults(t *testing.T) {
	out, err := runCLI(t, "solve")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if strings.Count(out, "{50:2, 10:1, 2:1, 1:1}") != 2 {
		t.Fatalf("expected both solvers to print the 113 solution:\n%s", out)
	}
}

func TestRun_SolveNonCanonical(t *testing.T) {
	out, err := runCLI(t, "solve", "-d", "1,3,4", "-a", "6")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	for _, want := range []string{"{4:1, 1:2}", "3 coins", "{3:2}", "2 coins"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestRun_SolveInfeasible(t *testing.T) {
	out, err := runCLI(t, "solve", "-d", "5,10", "-a", "3")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "infeasible") || !strings.Contains(out, "incomplete, 3 left over") {
		t.Fatalf("infeasible/incomplete not reported:\n%s", out)
	}
}

func TestRun_SolveErrors(t *testing.T) {
	if _, err := runCLI(t, "solve", "-d", "0,1"); err == nil {
		t.Error("zero denomination accepted")
	}
	if _, err := runCLI(t, "solve", "-a", "-4"); err == nil {
		t.Error("negative amount accepted")
	}
	if _, err := runCLI(t, "solve", "-a", "2000000"); !errors.Is(err, bench.ErrAmountTooLarge) {
		t.Errorf("amount above ceiling: err = %v", err)
	}
}

func TestRun_BenchWritesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	out, err := runCLI(t, "bench", "-d", "1,3,4", "-from", "0", "-to", "60", "-step", "10", "-repeats", "2", "-png", path)
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, want := range []string{"greedy", "exact", "greedy lost on", "chart written to"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open chart: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("chart is not a PNG: %v", err)
	}
}

func TestRun_BenchRejectsBadSweep(t *testing.T) {
	if _, err := runCLI(t, "bench", "-step", "0"); !errors.Is(err, bench.ErrInvalidSweep) {
		t.Fatalf("err = %v, want ErrInvalidSweep", err)
	}
}

func TestRun_Audit(t *testing.T) {
	out, err := runCLI(t, "audit", "-d", "25,10,1", "-to", "40", "-workers", "2")
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	for _, want := range []string{"smallest counterexample 30", "{10:3}", "greedy loses on"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "audit")
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !strings.Contains(out, "canonical up to 75") {
		t.Errorf("default set should be canonical:\n%s", out)
	}
}

func TestRun_AuditRespectsCeiling(t *testing.T) {
	_, err := runCLI(t, "audit", "-d", "1,2000000000")
	if !errors.Is(err, bench.ErrAmountTooLarge) {
		t.Fatalf("audit above ceiling: err = %v, want ErrAmountTooLarge", err)
	}

	cfg := config.Defaults()
	cfg.MaxAmount = 0
	var buf bytes.Buffer
	err = run(context.Background(), cfg, []string{"audit", "-d", fmt.Sprint(math.MaxInt) + "," + fmt.Sprint(math.MaxInt-1)}, &buf)
	if !errors.Is(err, coinchange.ErrBoundOverflow) {
		t.Fatalf("audit with overflowing bound: err = %v, want ErrBoundOverflow", err)
	}
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil || !strings.Contains(out, "changebench") {
		t.Fatalf("version: %q, %v", out, err)
	}

	out, err = runCLI(t, "version", "-json")
	if err != nil {
		t.Fatalf("version -json: %v", err)
	}
	var info coinchange.VersionInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("version -json output is not JSON: %v\n%s", err, out)
	}
	if info.Version != coinchange.Version || info.GoVersion == "" {
		t.Fatalf("version info = %+v", info)
	}
}
