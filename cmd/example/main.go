// Package main demonstrates basic gochange usage: both solvers on the
// classic 113-cent example.
package main

import (
	"fmt"

	"github.com/gitrdm/gochange/pkg/coinchange"
)

func main() {
	coins := []int{50, 25, 10, 5, 2, 1}
	amount := 113

	fmt.Println("=== gochange example ===")
	fmt.Println()
	fmt.Printf("Amount to change: %d\n", amount)
	fmt.Printf("Denominations:    %v\n", coins)
	fmt.Println()

	greedy, err := coinchange.Greedy(coins, amount)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Greedy:              %v (%d coins, %s)\n", greedy.Solution, greedy.Coins(), greedy.Status)

	exact, err := coinchange.Exact(coins, amount)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Dynamic programming: %v (%d coins, %s)\n", exact.Solution, exact.Coins(), exact.Status)
	fmt.Println()

	if exact.Coins() == greedy.Coins() {
		fmt.Println("Both solvers agree: greedy is optimal for this amount.")
	} else {
		fmt.Printf("Greedy spent %d more coin(s) than necessary.\n", greedy.Coins()-exact.Coins())
	}
}
