package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/ui/theme"
)

// SpeechBubble renders the helper's latest line next to its avatar,
// wrapped to fit width.
func SpeechBubble(avatar, text string, width int) string {
	avatarWidth := lipgloss.Width(avatar)
	textWidth := width - avatarWidth - 6
	if textWidth < 12 {
		textWidth = 12
	}
	if text == "" {
		text = "…"
	}
	bubble := theme.Bubble.Width(textWidth).Render(text)
	return lipgloss.JoinHorizontal(lipgloss.Center, avatar, " ", bubble)
}
