package coinchange

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation error so callers can test
// for the whole class with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrEmptyDenominations is returned when no denominations are supplied.
	ErrEmptyDenominations = fmt.Errorf("%w: denomination set is empty", ErrInvalidInput)
	// ErrNonPositiveDenomination is returned for a coin value ≤ 0.
	ErrNonPositiveDenomination = fmt.Errorf("%w: denomination must be positive", ErrInvalidInput)
	// ErrNegativeAmount is returned for a target amount < 0.
	ErrNegativeAmount = fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
)

// Validate rejects inputs neither solver can work with. It runs before any
// table is allocated.
func Validate(denominations []int, amount int) error {
	if len(denominations) == 0 {
		return ErrEmptyDenominations
	}
	for i, c := range denominations {
		if c <= 0 {
			return fmt.Errorf("%w: denominations[%d] = %d", ErrNonPositiveDenomination, i, c)
		}
	}
	if amount < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}
	return nil
}
