package division

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/divtutor/internal/hint"
	"github.com/abhisek/divtutor/internal/longdiv"
)

// followupMsg is delivered when a deferred engine transition is due.
type followupMsg struct {
	Followup longdiv.Followup
}

// hintTickMsg is delivered when an idle countdown expires.
type hintTickMsg struct {
	RoundID string
	Ticket  hint.Ticket
}

// tickFunc matches tea.Tick so tests can deliver timers immediately.
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

func followupCmd(tick tickFunc, f longdiv.Followup) tea.Cmd {
	return tick(f.After, func(time.Time) tea.Msg {
		return followupMsg{Followup: f}
	})
}

func hintCmd(tick tickFunc, roundID string, t hint.Ticket, d time.Duration) tea.Cmd {
	return tick(d, func(time.Time) tea.Msg {
		return hintTickMsg{RoundID: roundID, Ticket: t}
	})
}
