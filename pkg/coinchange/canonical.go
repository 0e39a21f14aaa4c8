package coinchange

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBoundOverflow is returned when the sum of the two largest
// denominations does not fit in an int.
var ErrBoundOverflow = errors.New("counterexample bound overflows int")

// Counterexample is an amount where Greedy does worse than Exact.
type Counterexample struct {
	Amount int
	Greedy Result
	Exact  Result
}

// Excess is how many more coins greedy spends than the optimum, or -1 when
// greedy could not cover the amount at all.
func (c Counterexample) Excess() int {
	if !c.Greedy.OK() {
		return -1
	}
	return c.Greedy.Coins() - c.Exact.Coins()
}

// Loses reports whether greedy is worse than exact on this pair of results:
// either greedy left a residual that exact could cover, or greedy used more
// coins.
func Loses(greedy, exact Result) bool {
	if !exact.OK() {
		return false
	}
	if !greedy.OK() {
		return true
	}
	return greedy.Coins() > exact.Coins()
}

// CounterexampleBound returns the largest amount FindCounterexample checks:
// the sum of the two largest distinct denominations. For systems containing
// a unit coin the smallest counterexample, if any, lies below this bound
// (Kozen and Zaks). A single distinct denomination yields 0. The result
// saturates at math.MaxInt.
func CounterexampleBound(denominations []int) int {
	distinct := make([]int, 0, len(denominations))
	seen := make(map[int]bool, len(denominations))
	for _, c := range denominations {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}
	if len(distinct) < 2 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.IntSlice(distinct)))
	if distinct[0] > math.MaxInt-distinct[1] {
		return math.MaxInt
	}
	return distinct[0] + distinct[1]
}

// FindCounterexample returns the smallest amount in 1..CounterexampleBound
// where greedy loses to the exact solver. The DP table is built once for the
// whole range.
//
// For denomination sets without a unit coin the bound is a search horizon,
// not a proof: a set reported canonical here may still fail greedy on
// larger amounts.
//
// The table holds CounterexampleBound+1 entries, so callers handling
// untrusted input should cap the bound first.
func FindCounterexample(denominations []int) (Counterexample, bool, error) {
	if err := Validate(denominations, 0); err != nil {
		return Counterexample{}, false, err
	}
	bound := CounterexampleBound(denominations)
	if bound == 0 {
		return Counterexample{}, false, nil
	}
	if bound == math.MaxInt {
		return Counterexample{}, false, fmt.Errorf("FindCounterexample: %w", ErrBoundOverflow)
	}

	table := tabulate(denominations, bound)
	for amount := 1; amount <= bound; amount++ {
		greedy, err := Greedy(denominations, amount)
		if err != nil {
			return Counterexample{}, false, err
		}
		exact := table.reconstruct(amount)
		if Loses(greedy, exact) {
			return Counterexample{Amount: amount, Greedy: greedy, Exact: exact}, true, nil
		}
	}
	return Counterexample{}, false, nil
}

// IsCanonical reports whether greedy is optimal for every amount up to
// CounterexampleBound.
func IsCanonical(denominations []int) (bool, error) {
	_, found, err := FindCounterexample(denominations)
	if err != nil {
		return false, err
	}
	return !found, nil
}
