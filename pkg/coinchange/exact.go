package coinchange

import "fmt"

// Exact makes change with the minimum possible number of coins.
//
// It tabulates minCount[s] and lastCoin[s] for every s in 0..amount and then
// walks lastCoin back from amount to 0. Denominations are tried in input
// order and only a strictly smaller count replaces the current best, so on
// ties the earliest denomination in the input wins.
//
// Exact(D, 0) is an empty StatusComplete result. When no combination sums to
// amount the result is StatusInfeasible with an empty solution.
//
// Time is O(amount × len(denominations)); memory is O(amount).
func Exact(denominations []int, amount int) (Result, error) {
	if err := Validate(denominations, amount); err != nil {
		return Result{}, err
	}
	return tabulate(denominations, amount).reconstruct(amount), nil
}

// dpTable holds the per-call DP state for sub-amounts 0..limit.
type dpTable struct {
	// minCount[s] is the fewest coins summing to s, or infeasible.
	minCount []int
	// lastCoin[s] is the coin added last on an optimal path to s; 0 when
	// s is 0 or infeasible.
	lastCoin []int
	// infeasible is limit+1: every coin is ≥ 1 so no feasible count
	// exceeds limit.
	infeasible int
}

func tabulate(denominations []int, limit int) *dpTable {
	t := &dpTable{
		minCount:   make([]int, limit+1),
		lastCoin:   make([]int, limit+1),
		infeasible: limit + 1,
	}
	for s := 1; s <= limit; s++ {
		t.minCount[s] = t.infeasible
	}

	for s := 1; s <= limit; s++ {
		for _, c := range denominations {
			if c > s {
				continue
			}
			prev := t.minCount[s-c]
			if prev == t.infeasible {
				continue
			}
			if prev+1 < t.minCount[s] {
				t.minCount[s] = prev + 1
				t.lastCoin[s] = c
			}
		}
	}
	return t
}

func (t *dpTable) feasible(amount int) bool {
	return t.minCount[amount] != t.infeasible
}

// reconstruct traces lastCoin back from amount. amount must be within the
// tabulated range.
func (t *dpTable) reconstruct(amount int) Result {
	solution := make(Solution)
	if !t.feasible(amount) {
		return Result{Solution: solution, Status: StatusInfeasible, Remainder: amount}
	}
	for current := amount; current > 0; {
		coin := t.lastCoin[current]
		solution[coin]++
		current -= coin
	}
	return Result{Solution: solution, Status: StatusComplete}
}

// ExactRange solves every amount in from..to with one shared table, which
// costs the same as a single Exact(denominations, to) call. results[i] is
// the solution for from+i.
func ExactRange(denominations []int, from, to int) ([]Result, error) {
	if err := Validate(denominations, from); err != nil {
		return nil, err
	}
	if to < from {
		return nil, fmt.Errorf("ExactRange: to (%d) is below from (%d)", to, from)
	}
	table := tabulate(denominations, to)
	results := make([]Result, 0, to-from+1)
	for amount := from; amount <= to; amount++ {
		results = append(results, table.reconstruct(amount))
	}
	return results, nil
}
