package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisorRange is returned when the divisor is outside [10, 89].
	ErrDivisorRange = errors.New("divisor must be between 10 and 89")

	// ErrDividendRange is returned when the dividend is below the divisor or above 999.
	ErrDividendRange = errors.New("dividend must be at least the divisor and at most 999")

	// ErrNotDivisible is returned when the dividend leaves a remainder.
	ErrNotDivisible = errors.New("dividend must divide evenly by the divisor")
)

// NewProblem builds a Problem from caller-supplied numbers, enforcing the
// same invariants RandomGenerator guarantees.
func NewProblem(dividend, divisor int) (Problem, error) {
	cfg := DefaultConfig()
	if divisor < cfg.DivisorMin || divisor > cfg.DivisorMax {
		return Problem{}, fmt.Errorf("divisor %d: %w", divisor, ErrDivisorRange)
	}
	if dividend < divisor || dividend > cfg.MaxDividend {
		return Problem{}, fmt.Errorf("dividend %d: %w", dividend, ErrDividendRange)
	}
	if dividend%divisor != 0 {
		return Problem{}, fmt.Errorf("%d ÷ %d: %w", dividend, divisor, ErrNotDivisible)
	}
	return Problem{
		Dividend: dividend,
		Divisor:  divisor,
		Digits:   DigitsOf(dividend),
	}, nil
}
