package longdiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/problemgen"
)

func mustProblem(t *testing.T, dividend, divisor int) problemgen.Problem {
	t.Helper()
	p, err := problemgen.NewProblem(dividend, divisor)
	require.NoError(t, err)
	return p
}

func TestLayout_TwoDigitWindow(t *testing.T) {
	g := grid.New()
	cur := Layout(g, mustProblem(t, 768, 24))

	// Divisor at row 1, columns 0..1, right border on the last digit.
	c, ok := g.Get(DividendRow, 0)
	require.True(t, ok)
	assert.Equal(t, "2", c.Content)
	assert.False(t, c.Tags.Has(grid.TagBorderRight))
	c, _ = g.Get(DividendRow, 1)
	assert.Equal(t, "4", c.Content)
	assert.True(t, c.Tags.Has(grid.TagBorderRight))

	// Dividend digits follow, under the division bar.
	for i, want := range []string{"7", "6", "8"} {
		c, ok := g.Get(DividendRow, 2+i)
		require.True(t, ok, "dividend col %d", 2+i)
		assert.Equal(t, want, c.Content)
		assert.True(t, c.Tags.Has(grid.TagBorderBottom))
	}

	// Quotient row reserved blank above the dividend.
	for col := 2; col <= 4; col++ {
		c, ok := g.Get(QuotientRow, col)
		require.True(t, ok, "quotient col %d", col)
		assert.Equal(t, "", c.Content)
		assert.True(t, c.Tags.Has(grid.TagBorderBottom))
	}
	assert.False(t, g.Has(QuotientRow, 0))

	assert.Equal(t, Cursor{
		ActiveRow:          QuotientRow,
		ActiveCol:          3,
		CurrentDividendVal: 76,
		CalculationRow:     FirstCalculationRow,
	}, cur)
}

func TestLayout_ThreeDigitWindow(t *testing.T) {
	g := grid.New()
	cur := Layout(g, mustProblem(t, 120, 24))

	assert.Equal(t, 120, cur.CurrentDividendVal)
	assert.Equal(t, 4, cur.ActiveCol)
}

func TestFirstWindow(t *testing.T) {
	tests := []struct {
		dividend, divisor int
		wantVal, wantLen  int
	}{
		{768, 24, 76, 2},
		{120, 24, 120, 3},
		{480, 48, 48, 2},
		{89 * 11, 89, 97, 2},
		{48, 24, 48, 2},
	}
	for _, tt := range tests {
		val, length := firstWindow(mustProblem(t, tt.dividend, tt.divisor))
		assert.Equal(t, tt.wantVal, val, "%d ÷ %d", tt.dividend, tt.divisor)
		assert.Equal(t, tt.wantLen, length, "%d ÷ %d", tt.dividend, tt.divisor)
	}
}
