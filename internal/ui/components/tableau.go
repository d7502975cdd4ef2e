package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/ui/theme"
)

// tableauCellWidth is the rendered width of one grid column.
const tableauCellWidth = 3

// Tableau renders a division grid. Each column is three characters wide,
// a right border becomes "│" and bottom-bordered cells get a "───" rule on
// the line beneath. A rule directly below another rule is drawn once.
type Tableau struct {
	Grid *grid.Grid
}

// NewTableau creates a tableau view of g.
func NewTableau(g *grid.Grid) Tableau {
	return Tableau{Grid: g}
}

// CellStyle returns the style for a cell with the given tags.
func CellStyle(tags grid.Tag) lipgloss.Style {
	style := theme.Cell
	switch {
	case tags.Has(grid.TagActive) && tags.Has(grid.TagWrong):
		style = theme.CellWrong
	case tags.Has(grid.TagActive):
		style = theme.CellActive
	case tags.Has(grid.TagWrong):
		style = theme.CellWrong
	case tags.Has(grid.TagHighlight):
		style = theme.CellHighlight
	case tags.Has(grid.TagCorrect):
		style = theme.CellCorrect
	case tags.Has(grid.TagCarried):
		style = theme.CellCarried
	}
	return style
}

// View renders the tableau.
func (t Tableau) View() string {
	if t.Grid == nil {
		return ""
	}
	rows, cols := t.Grid.Bounds()
	blank := strings.Repeat(" ", tableauCellWidth)
	rule := theme.Rule.Render(strings.Repeat("─", tableauCellWidth))

	var lines []string
	drewRule := false
	for r := 0; r < rows; r++ {
		last, lastRule := t.lastVisible(r, cols)

		var line, under strings.Builder
		for c := 0; c <= last; c++ {
			cell, ok := t.Grid.Get(r, c)
			if !ok {
				line.WriteString(blank)
				continue
			}
			line.WriteString(renderTableauCell(cell, c == last))
		}
		for c := 0; c <= lastRule; c++ {
			if cell, ok := t.Grid.Get(r, c); ok && cell.Tags.Has(grid.TagBorderBottom) {
				under.WriteString(rule)
			} else {
				under.WriteString(blank)
			}
		}

		lines = append(lines, line.String())
		bordered := lastRule >= 0
		if bordered && !drewRule {
			lines = append(lines, under.String())
		}
		drewRule = bordered && !drewRule
	}
	return strings.Join(lines, "\n")
}

// lastVisible returns the last column of row r that draws something on
// the row itself and the last column that draws a rule beneath it, or -1.
// Styling is applied after this cut so trailing blanks never reach output.
func (t Tableau) lastVisible(r, cols int) (last, lastRule int) {
	last, lastRule = -1, -1
	for c := 0; c < cols; c++ {
		cell, ok := t.Grid.Get(r, c)
		if !ok {
			continue
		}
		if cell.Content != "" || cell.Tags.Has(grid.TagBorderRight) {
			last = c
		}
		if cell.Tags.Has(grid.TagBorderBottom) {
			lastRule = c
		}
	}
	return last, lastRule
}

// renderTableauCell draws one column. The trailing pad of the last cell
// on a line is omitted.
func renderTableauCell(c grid.Cell, last bool) string {
	content := c.Content
	if content == "" {
		content = " "
	}
	right := " "
	switch {
	case c.Tags.Has(grid.TagBorderRight):
		right = theme.Rule.Render("│")
	case last:
		right = ""
	}
	return " " + CellStyle(c.Tags).Render(content) + right
}
