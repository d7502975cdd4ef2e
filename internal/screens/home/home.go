package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/divtutor/internal/router"
	"github.com/abhisek/divtutor/internal/screen"
	"github.com/abhisek/divtutor/internal/screens/division"
	"github.com/abhisek/divtutor/internal/screens/summary"
	"github.com/abhisek/divtutor/internal/session"
	"github.com/abhisek/divtutor/internal/ui/components"
	"github.com/abhisek/divtutor/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	session *session.Session
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Every division screen it opens shares opts,
// including the session that feeds the stats bar.
func New(opts division.Options) *HomeScreen {
	if opts.Session == nil {
		opts.Session = session.New(nil)
	}
	sess := opts.Session

	items := []components.MenuItem{
		{Label: "START", Hotkey: "s", Action: func() tea.Cmd {
			screenOpts := opts
			// A fixed first problem is only played once.
			opts.First = nil
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: division.New(screenOpts)}
			}
		}},
		{Label: "SUMMARY", Hotkey: "r", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(sess.Summary())}
			}
		}},
		{Label: "EXIT", Hotkey: "x", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		session: sess,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := layout.IsCompact(width, height+layout.HeaderHeight+layout.FooterHeight)

	cw := components.ContentWidth(width)
	board := h.session.Board()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.session), cw))
	}
	sections = append(sections, renderStatsBar(
		board.Total(), board.Streak(), board.Badge().DisplayName(), cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Items, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotFor celebrates once the learner has a streak going.
func mascotFor(s *session.Session) components.MascotVariant {
	if s.Board().Streak() > 0 {
		return components.MascotCelebrating
	}
	return components.MascotIdle
}
