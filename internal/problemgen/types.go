package problemgen

import (
	"strconv"
)

// Problem is one long-division round: a dividend that divides evenly by
// divisor. It is created once per round and never mutated.
type Problem struct {
	// Dividend is the number being divided (at most 999).
	Dividend int

	// Divisor is the two-digit number dividing the dividend.
	Divisor int

	// Digits holds the base-10 digits of Dividend, most-significant first.
	Digits []int
}

// Quotient returns Dividend / Divisor.
func (p Problem) Quotient() int {
	if p.Divisor == 0 {
		return 0
	}
	return p.Dividend / p.Divisor
}

// DivisorDigits returns the base-10 digits of Divisor, most-significant first.
func (p Problem) DivisorDigits() []int {
	return DigitsOf(p.Divisor)
}

// String renders the problem as "768 ÷ 24".
func (p Problem) String() string {
	return strconv.Itoa(p.Dividend) + " ÷ " + strconv.Itoa(p.Divisor)
}

// DigitsOf splits a non-negative integer into its base-10 digits,
// most-significant first. DigitsOf(0) is [0].
func DigitsOf(n int) []int {
	s := strconv.Itoa(n)
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		digits = append(digits, int(r-'0'))
	}
	return digits
}
