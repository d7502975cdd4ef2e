package problemgen

// Config bounds the sampling ranges used by RandomGenerator.
type Config struct {
	// DivisorMin and DivisorMax bound the divisor (inclusive).
	DivisorMin int
	DivisorMax int

	// MultiplierMin and MultiplierMax bound the quotient (inclusive).
	MultiplierMin int
	MultiplierMax int

	// MaxDividend rejects samples whose product exceeds it.
	MaxDividend int
}

// DefaultConfig returns the ranges the tutor is designed around: a
// two-digit divisor, a two-digit quotient, and a dividend of at most three
// digits. Those bounds keep the first working window to 2 or 3 digits.
func DefaultConfig() Config {
	return Config{
		DivisorMin:    10,
		DivisorMax:    89,
		MultiplierMin: 10,
		MultiplierMax: 29,
		MaxDividend:   999,
	}
}
