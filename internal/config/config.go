// Package config loads gochange settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDenominations = "GOCHANGE_DENOMINATIONS"
	EnvAmount        = "GOCHANGE_AMOUNT"
	EnvBenchFrom     = "GOCHANGE_BENCH_FROM"
	EnvBenchTo       = "GOCHANGE_BENCH_TO"
	EnvBenchStep     = "GOCHANGE_BENCH_STEP"
	EnvBenchRepeats  = "GOCHANGE_BENCH_REPEATS"
	EnvWorkers       = "GOCHANGE_WORKERS"
	EnvMaxAmount     = "GOCHANGE_MAX_AMOUNT"
	EnvTrace         = "GOCHANGE_TRACE"
)

// DefaultEnvFile is loaded by Load when no path is given.
const DefaultEnvFile = ".env"

// Config is the resolved runtime configuration. CLI flags start from these
// values.
type Config struct {
	Denominations []int
	Amount        int
	Bench         BenchConfig
	// MaxAmount caps every amount the harness will solve.
	MaxAmount int
	Trace     bool
}

// BenchConfig describes the benchmark sweep.
type BenchConfig struct {
	From    int
	To      int
	Step    int
	Repeats int
	Workers int
}

// Defaults are applied for unset variables.
var defaults = Config{
	Denominations: []int{50, 25, 10, 5, 2, 1},
	Amount:        113,
	Bench: BenchConfig{
		From:    1,
		To:      1000,
		Step:    50,
		Repeats: 20,
		Workers: 1,
	},
	MaxAmount: 1_000_000,
}

// Defaults returns a copy of the built-in configuration.
func Defaults() Config {
	c := defaults
	c.Denominations = append([]int(nil), defaults.Denominations...)
	return c
}

// Load reads envFile into the process environment (variables already set
// win) and then resolves Config from the environment. A missing envFile is
// not an error; an unreadable or malformed one is.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv resolves Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Defaults()

	if v, ok := lookup(EnvDenominations); ok {
		d, err := ParseDenominations(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDenominations, err)
		}
		cfg.Denominations = d
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvAmount, &cfg.Amount},
		{EnvBenchFrom, &cfg.Bench.From},
		{EnvBenchTo, &cfg.Bench.To},
		{EnvBenchStep, &cfg.Bench.Step},
		{EnvBenchRepeats, &cfg.Bench.Repeats},
		{EnvWorkers, &cfg.Bench.Workers},
		{EnvMaxAmount, &cfg.MaxAmount},
	}
	for _, f := range ints {
		v, ok := lookup(f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %q is not an integer", f.name, v)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvTrace); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %q is not a boolean", EnvTrace, v)
		}
		cfg.Trace = b
	}
	return cfg, nil
}

// lookup treats a variable set to whitespace as unset.
func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// ParseDenominations parses a comma-separated coin list such as
// "50, 25, 10". Values must be positive integers; input order is kept.
func ParseDenominations(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	d := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("denomination %q is not an integer", f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("denomination %d must be positive", n)
		}
		d = append(d, n)
	}
	if len(d) == 0 {
		return nil, errors.New("no denominations given")
	}
	return d, nil
}
