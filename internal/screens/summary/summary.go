package summary

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/router"
	"github.com/abhisek/divtutor/internal/score"
	"github.com/abhisek/divtutor/internal/screen"
	"github.com/abhisek/divtutor/internal/session"
	"github.com/abhisek/divtutor/internal/ui/components"
	"github.com/abhisek/divtutor/internal/ui/layout"
	"github.com/abhisek/divtutor/internal/ui/theme"
)

// maxRoundLines caps the per-round list; older rounds are summarized.
const maxRoundLines = 8

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
	}

	var b strings.Builder

	title := "Session complete!"
	if sum.Completed == 0 {
		title = "See you next time!"
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), title))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		"Duration: "+clock(sum.Duration)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Solved: %d/%d      Accuracy: %.0f%%      Hints: %d",
		sum.Completed, sum.Rounds, sum.Progress.Accuracy*100, sum.Hints)
	scoreLine := fmt.Sprintf("◆ %d points    ★ best streak %d    %s",
		sum.Points, sum.BestStreak, sum.Badge.DisplayName())
	card := components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine)+"\n"+
			lipgloss.NewStyle().Foreground(badgeColor(sum.Badge)).Bold(true).Render(scoreLine),
		components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if len(sum.Results) == 0 {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Problems"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	results := sum.Results
	if skipped := len(results) - maxRoundLines; skipped > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("… %d earlier", skipped)))
		b.WriteString("\n")
		results = results[skipped:]
	}

	for _, r := range results {
		var line string
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if r.Complete {
			line = fmt.Sprintf("✓ %s = %d    %s    %d tries    %d hints",
				r.Problem, r.Quotient, clock(r.Duration()), r.Submissions, r.Hints)
			if r.Mistakes == 0 {
				style = style.Foreground(theme.Success)
			}
		} else {
			line = fmt.Sprintf("· %s    unfinished", r.Problem)
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(center(style, line))
		b.WriteString("\n")
	}

	return b.String()
}

// clock formats d as m:ss.
func clock(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// badgeColor returns the theme color for a streak badge.
func badgeColor(b score.Badge) color.Color {
	switch b {
	case score.BadgeBronze:
		return theme.Accent
	case score.BadgeSilver:
		return theme.Text
	case score.BadgeGold:
		return theme.ArcadeYellow
	case score.BadgeComet:
		return theme.ArcadeCyan
	default:
		return theme.TextDim
	}
}
