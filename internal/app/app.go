package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/divtutor/internal/router"
	"github.com/abhisek/divtutor/internal/screen"
	"github.com/abhisek/divtutor/internal/screens/division"
	"github.com/abhisek/divtutor/internal/screens/home"
	"github.com/abhisek/divtutor/internal/session"
	"github.com/abhisek/divtutor/internal/ui/layout"
)

// Options holds the dependencies shared by every screen.
type Options struct {
	Division division.Options

	// SkipHome opens the division screen directly.
	SkipHome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen, or with the
// division screen above it when SkipHome is set.
func newAppModel(opts Options) AppModel {
	if opts.Division.Session == nil {
		opts.Division.Session = session.New(nil)
	}
	homeOpts := opts.Division
	if opts.SkipHome {
		homeOpts.First = nil
	}
	r := router.New(home.New(homeOpts))
	var initCmd tea.Cmd
	if opts.SkipHome {
		initCmd = r.Push(division.New(opts.Division))
	}
	return AppModel{
		router:  r,
		session: opts.Division.Session,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	board := m.session.Board()
	header := layout.RenderHeader(title, board.Total(), board.Streak(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "S", Description: "Start"},
		{Key: "R", Description: "Summary"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
