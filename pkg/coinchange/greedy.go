package coinchange

import "sort"

// Greedy makes change by repeatedly taking as many coins of the largest
// remaining denomination as fit.
//
// Greedy is optimal only for canonical coin systems. When the denominations
// cannot cover the amount exactly (no unit coin, or gaps the largest-first
// order walks past) the Result is StatusIncomplete and Remainder holds the
// uncovered residual. The caller's slice is not modified.
func Greedy(denominations []int, amount int) (Result, error) {
	if err := Validate(denominations, amount); err != nil {
		return Result{}, err
	}

	sorted := make([]int, len(denominations))
	copy(sorted, denominations)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	solution := make(Solution)
	remaining := amount
	for _, c := range sorted {
		if remaining == 0 {
			break
		}
		// Duplicates fall through here: after the first copy remaining < c.
		if count := remaining / c; count > 0 {
			solution[c] += count
			remaining -= c * count
		}
	}

	status := StatusComplete
	if remaining > 0 {
		status = StatusIncomplete
	}
	return Result{Solution: solution, Status: status, Remainder: remaining}, nil
}
