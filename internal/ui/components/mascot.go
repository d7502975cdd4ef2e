package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: round complete
	MascotAlert                            // Rose, exclamation: wrong digit
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ÷×− │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ÷×− │
└─╥═╥─┘`

const mascotAlert = `┌─────┐
│ ◉ ◉ │!
│  ○  │
│ ÷×− │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
