package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/ui/components"
	"github.com/abhisek/divtutor/internal/ui/theme"
)

const arcadeTitleFull = ` ____  _____     _______ _   _ _____ ___  ____
|  _ \|_ _\ \   / /_   _| | | |_   _/ _ \|  _ \
| | | || | \ \ / /  | | | | | | | || | | | |_) |
| |_| || |  \ V /   | | | |_| | | || |_| |  _ <
|____/|___|  \_/    |_|  \___/  |_| \___/|_| \_\`

const arcadeTitleCompact = "D · I · V · T · U · T · O · R"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the session score in a bordered box matching
// content width.
func renderStatsBar(points, streak int, badge string, cw int, compact bool) string {
	pointStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			pointStyle.Render(fmt.Sprintf("◆%d", points)),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
			badgeStyle.Render(badge),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			pointStyle.Render(fmt.Sprintf("◆ %d POINTS", points)),
			streakStyle.Render(fmt.Sprintf("★ %d STREAK", streak)),
			badgeStyle.Render(strings.ToUpper(badge)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []components.MenuItem, selected int, cw int) string {
	var buttons []string
	for i, item := range items {
		buttons = append(buttons, components.ArcadeButton(item.Label, item.Hotkey, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant components.MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.RenderMascot(variant))
}
