package division

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/ui/components"
	"github.com/abhisek/divtutor/internal/ui/theme"
)

func (s *DivisionScreen) View(width, height int) string {
	e := s.engine
	if e == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Picking a problem...")
	}

	var b strings.Builder

	// Info line.
	res := e.Result()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Round %d: %s", s.rounds, e.Problem()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d",
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			res.Mistakes,
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("?"),
			res.Hints,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Tableau.
	board := theme.Card.Render(components.NewTableau(e.Grid()).View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, board))
	b.WriteString("\n\n")

	// Helper.
	bubble := components.SpeechBubble(components.RenderMascot(s.mascot()), s.transcript.Last(), min(width-4, 72))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bubble))
	b.WriteString("\n\n")

	// Progress through the quotient digits.
	track := components.NewDigitTrack(e.DigitsDone(), e.DigitsTotal())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, track.View()))

	if s.help.ShowAll {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.help.View(s.keys)))
	}

	return b.String()
}

// mascot picks the helper's mood from the round state.
func (s *DivisionScreen) mascot() components.MascotVariant {
	e := s.engine
	if e.Done() {
		return components.MascotCelebrating
	}
	cur := e.Cursor()
	if c, ok := e.Grid().Get(cur.ActiveRow, cur.ActiveCol); ok && c.Tags.Has(grid.TagWrong) {
		return components.MascotAlert
	}
	return components.MascotIdle
}
