package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/ui/theme"
)

// DigitTrack shows how many quotient digits are placed: one marker per
// digit, with the next digit to find highlighted.
type DigitTrack struct {
	Done  int
	Total int
}

func NewDigitTrack(done, total int) DigitTrack {
	return DigitTrack{Done: done, Total: total}
}

// View renders e.g. "Digits ● ◉ ○  1/3".
func (d DigitTrack) View() string {
	done := min(max(d.Done, 0), d.Total)

	doneStyle := lipgloss.NewStyle().Foreground(theme.Success)
	nextStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	todoStyle := lipgloss.NewStyle().Foreground(theme.Border)

	markers := make([]string, 0, d.Total)
	for i := 0; i < d.Total; i++ {
		switch {
		case i < done:
			markers = append(markers, doneStyle.Render("●"))
		case i == done:
			markers = append(markers, nextStyle.Render("◉"))
		default:
			markers = append(markers, todoStyle.Render("○"))
		}
	}

	label := lipgloss.NewStyle().Foreground(theme.Text).Render("Digits")
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", done, d.Total))
	if d.Total == 0 {
		return label + "  " + count
	}
	return label + " " + strings.Join(markers, " ") + "  " + count
}
