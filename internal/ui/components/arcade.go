package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every boxed section of a
// cabinet screen, clamped to [20, 60].
func ContentWidth(frameWidth int) int {
	// Cabinet border (2) plus inner padding (4).
	return min(max(frameWidth-6, 20), 60)
}

func boxed(b lipgloss.Border, c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(b).BorderForeground(c)
}

// CabinetFrame wraps content in a double border and centers it in
// width x height.
func CabinetFrame(content string, width, height int) string {
	return boxed(lipgloss.DoubleBorder(), theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return boxed(lipgloss.RoundedBorder(), theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a menu button. A non-empty hotkey is shown after
// the label.
func ArcadeButton(label, hotkey string, selected bool, width int) string {
	text := label
	if hotkey != "" {
		text += "  [" + hotkey + "]"
	}

	style := boxed(lipgloss.RoundedBorder(), theme.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(theme.Text)
	if !selected {
		return style.Render(text)
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + text)
}
