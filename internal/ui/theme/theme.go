package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: chalkboard dark with bright marker colors.
var (
	Primary      = lipgloss.Color("#8B5CF6") // Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Marker yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Marker cyan
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)

	Bubble = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Foreground(Text).
		Padding(0, 1)
)

// Tableau cells, one style per grid tag. Styles are layered in the order
// Cell, Carried, Correct, Highlight, Wrong, Active.
var (
	Cell = lipgloss.NewStyle().
		Foreground(Text)

	CellCarried = lipgloss.NewStyle().
			Foreground(ArcadeCyan).
			Italic(true)

	CellCorrect = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	CellHighlight = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(ArcadeYellow).
			Bold(true)

	CellWrong = lipgloss.NewStyle().
			Foreground(Text).
			Background(Error).
			Bold(true)

	CellActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Secondary).
			Bold(true).
			Blink(true)

	Rule = lipgloss.NewStyle().
		Foreground(TextDim)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
