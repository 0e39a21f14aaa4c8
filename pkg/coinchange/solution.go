package coinchange

import (
	"fmt"
	"sort"
	"strings"
)

// Solution maps a denomination to how many coins of it are used.
// Denominations with a zero count are never stored.
type Solution map[int]int

// Pair is one (denomination, count) entry of a Solution.
type Pair struct {
	Denomination int
	Count        int
}

// Total returns Σ denomination·count.
func (s Solution) Total() int {
	total := 0
	for c, n := range s {
		total += c * n
	}
	return total
}

// Coins returns the number of coins in the solution.
func (s Solution) Coins() int {
	coins := 0
	for _, n := range s {
		coins += n
	}
	return coins
}

// Pairs returns the entries ordered by descending denomination.
func (s Solution) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s))
	for c, n := range s {
		if n == 0 {
			continue
		}
		pairs = append(pairs, Pair{Denomination: c, Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Denomination > pairs[j].Denomination
	})
	return pairs
}

// Equal reports whether both solutions use the same coins.
func (s Solution) Equal(other Solution) bool {
	if len(s) != len(other) {
		return false
	}
	for c, n := range s {
		if other[c] != n {
			return false
		}
	}
	return true
}

// String formats the solution as {50:2, 10:1}, largest coin first.
func (s Solution) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range s.Pairs() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d:%d", p.Denomination, p.Count)
	}
	b.WriteByte('}')
	return b.String()
}

// Status tells whether a Result represents the full target amount.
type Status int

const (
	// StatusComplete means the coins sum exactly to the amount.
	StatusComplete Status = iota
	// StatusIncomplete means greedy ran out of fitting coins with a
	// positive residual left over.
	StatusIncomplete
	// StatusInfeasible means no combination of the denominations sums to
	// the amount.
	StatusInfeasible
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusIncomplete:
		return "incomplete"
	case StatusInfeasible:
		return "infeasible"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is what both solvers return.
//
// Remainder is the part of the amount the solution does not cover. It is 0
// exactly when Status is StatusComplete, so an empty complete Result (amount
// 0) can never be confused with an infeasible one.
type Result struct {
	Solution  Solution
	Status    Status
	Remainder int
}

// OK reports whether the solution sums exactly to the requested amount.
func (r Result) OK() bool {
	return r.Status == StatusComplete
}

// Coins returns the number of coins in the solution.
func (r Result) Coins() int {
	return r.Solution.Coins()
}

func (r Result) String() string {
	if r.Status == StatusComplete {
		return r.Solution.String()
	}
	return fmt.Sprintf("%s (%s, remainder %d)", r.Solution, r.Status, r.Remainder)
}
