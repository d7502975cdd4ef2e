package problemgen

import (
	"math/rand/v2"
	"time"
)

// Generator produces long-division problems.
type Generator interface {
	// Generate returns a new Problem. It never fails.
	Generate() Problem
}

// RandomGenerator samples problems uniformly from the configured ranges,
// resampling until the dividend fits.
type RandomGenerator struct {
	cfg Config
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator seeded from the wall clock.
func New(cfg Config) *RandomGenerator {
	seed := uint64(time.Now().UnixNano())
	return NewSeeded(cfg, seed)
}

// NewSeeded creates a RandomGenerator with a fixed seed, for reproducible
// sequences.
func NewSeeded(cfg Config, seed uint64) *RandomGenerator {
	return &RandomGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate samples a divisor and a multiplier until divisor*multiplier is
// within MaxDividend. The default ranges always contain qualifying pairs
// (10*10 = 100), so the loop terminates.
func (g *RandomGenerator) Generate() Problem {
	for {
		divisor := g.between(g.cfg.DivisorMin, g.cfg.DivisorMax)
		multiplier := g.between(g.cfg.MultiplierMin, g.cfg.MultiplierMax)
		dividend := divisor * multiplier
		if dividend > g.cfg.MaxDividend {
			continue
		}
		return Problem{
			Dividend: dividend,
			Divisor:  divisor,
			Digits:   DigitsOf(dividend),
		}
	}
}

// between returns a uniform sample from [lo, hi].
func (g *RandomGenerator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
