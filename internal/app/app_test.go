package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/divtutor/internal/router"
	"github.com/abhisek/divtutor/internal/screens/division"
	"github.com/abhisek/divtutor/internal/session"
)

func TestAppModel_StartsAtHome(t *testing.T) {
	m := newAppModel(Options{})
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("active = %q, want Home", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestAppModel_SkipHome(t *testing.T) {
	m := newAppModel(Options{SkipHome: true})
	if got := m.router.Active().Title(); got != "Long Division" {
		t.Errorf("active = %q, want Long Division", got)
	}
	if m.Init() == nil {
		t.Error("expected the division screen to start a round on Init")
	}
}

func TestAppModel_EscPops(t *testing.T) {
	m := newAppModel(Options{SkipHome: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAppModel_ViewShowsScoreAndHints(t *testing.T) {
	sess := session.New(nil)
	sess.Board().Award(100)
	m := newAppModel(Options{Division: division.Options{Session: sess}, SkipHome: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := ansi.Strip(updated.(AppModel).render())

	for _, want := range []string{"◆ 100 pts", "★ 1 streak", "Long Division", "new problem"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if view := ansi.Strip(updated.(AppModel).render()); !strings.Contains(view, "needs more room") {
		t.Errorf("expected size warning, got:\n%s", view)
	}
}

func TestAppModel_EscRecordsAbandonedRound(t *testing.T) {
	sess := session.New(nil)
	m := newAppModel(Options{Division: division.Options{Session: sess}, SkipHome: true})
	m.Init()

	updated, _ := m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	updated, _ = updated.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	updated.Update(router.PopScreenMsg{})

	if got := updated.(AppModel).router.Active().Title(); got != "Home" {
		t.Fatalf("active = %q, want Home", got)
	}
	if got := len(sess.Rounds()); got != 1 {
		t.Errorf("recorded %d rounds, want 1", got)
	}
}
