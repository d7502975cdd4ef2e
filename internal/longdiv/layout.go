package longdiv

import (
	"strconv"

	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/problemgen"
)

// Fixed rows of the tableau. Calculation rows (product, remainder, ...)
// start at FirstCalculationRow and grow downward.
const (
	QuotientRow         = 0
	DividendRow         = 1
	FirstCalculationRow = 2
)

// Cursor is the engine's position within the division.
type Cursor struct {
	// ActiveRow and ActiveCol address the cell awaiting input.
	ActiveRow int
	ActiveCol int

	// CurrentDividendVal is the part of the running dividend not yet divided.
	CurrentDividendVal int

	// CalculationRow is where the next product row is written.
	CalculationRow int

	// PendingInput is the learner's uncommitted entry, "" if none.
	PendingInput string
}

// Layout renders the initial tableau for p into g and returns the cursor
// positioned on the first working window.
//
// Divisor digits occupy columns 0..k-1 with a right border on the last one.
// Dividend digits follow at columns k..k+n-1 under the division bar, and the
// quotient row above them is reserved blank.
func Layout(g *grid.Grid, p problemgen.Problem) Cursor {
	divisor := p.DivisorDigits()
	k := len(divisor)

	for i, d := range divisor {
		if i == k-1 {
			g.Place(DividendRow, i, strconv.Itoa(d), grid.TagBorderRight)
			continue
		}
		g.Place(DividendRow, i, strconv.Itoa(d))
	}

	for i, d := range p.Digits {
		g.Place(DividendRow, k+i, strconv.Itoa(d), grid.TagBorderBottom)
	}

	for i := range p.Digits {
		g.Place(QuotientRow, k+i, "", grid.TagBorderBottom)
	}

	val, length := firstWindow(p)
	return Cursor{
		ActiveRow:          QuotientRow,
		ActiveCol:          k + length - 1,
		CurrentDividendVal: val,
		CalculationRow:     FirstCalculationRow,
	}
}

// firstWindow returns the shortest dividend prefix of length 2, then 3,
// whose value is at least the divisor. A two-digit divisor and a dividend
// of at most 999 keep the answer within those two lengths; anything else
// falls back to the whole dividend.
func firstWindow(p problemgen.Problem) (val, length int) {
	n := len(p.Digits)
	for length = 2; length <= 3 && length <= n; length++ {
		val = prefixValue(p.Digits, length)
		if val >= p.Divisor {
			return val, length
		}
	}
	return prefixValue(p.Digits, n), n
}

func prefixValue(digits []int, length int) int {
	v := 0
	for _, d := range digits[:length] {
		v = v*10 + d
	}
	return v
}
