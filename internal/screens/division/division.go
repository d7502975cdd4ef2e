// Package division is the interactive long-division screen. It feeds
// keypresses to the step engine and turns the engine's followups and the
// idle-hint countdown into Bubble Tea timers.
package division

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/divtutor/internal/feedback"
	"github.com/abhisek/divtutor/internal/hint"
	"github.com/abhisek/divtutor/internal/longdiv"
	"github.com/abhisek/divtutor/internal/problemgen"
	"github.com/abhisek/divtutor/internal/router"
	"github.com/abhisek/divtutor/internal/screen"
	"github.com/abhisek/divtutor/internal/session"
	"github.com/abhisek/divtutor/internal/ui/layout"
)

// Options configures a DivisionScreen. Zero fields get defaults.
type Options struct {
	Generator problemgen.Generator
	Session   *session.Session
	Timing    longdiv.Timing
	IdleDelay time.Duration
	Player    feedback.Player
	Speaker   feedback.Speaker
	Logger    *slog.Logger

	// First, if set, is played before any generated problem.
	First *problemgen.Problem
}

// DivisionScreen implements screen.Screen for one tutoring run.
type DivisionScreen struct {
	opts       Options
	engine     *longdiv.Engine
	hints      *hint.Scheduler
	transcript *feedback.Transcript
	speaker    feedback.Speaker
	keys       keyMap
	help       help.Model
	tick       tickFunc
	rounds     int
}

var _ screen.Screen = (*DivisionScreen)(nil)
var _ screen.KeyHintProvider = (*DivisionScreen)(nil)
var _ screen.Leaver = (*DivisionScreen)(nil)

// New creates a DivisionScreen. The first round starts in Init.
func New(opts Options) *DivisionScreen {
	if opts.Generator == nil {
		opts.Generator = problemgen.New(problemgen.DefaultConfig())
	}
	if opts.Session == nil {
		opts.Session = session.New(nil)
	}
	if opts.Player == nil {
		opts.Player = feedback.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	transcript := feedback.NewTranscript(feedback.DefaultTranscriptSize)
	speakers := feedback.MultiSpeaker{transcript}
	if opts.Speaker != nil {
		speakers = append(speakers, opts.Speaker)
	}

	return &DivisionScreen{
		opts:       opts,
		hints:      hint.New(opts.IdleDelay),
		transcript: transcript,
		speaker:    speakers,
		keys:       defaultKeyMap(),
		help:       help.New(),
		tick:       tea.Tick,
	}
}

func (s *DivisionScreen) Init() tea.Cmd {
	return s.newRound()
}

func (s *DivisionScreen) Title() string {
	return "Long Division"
}

func (s *DivisionScreen) KeyHints() []layout.KeyHint {
	return s.keys.footerHints()
}

func (s *DivisionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case followupMsg:
		return s.handleFollowup(msg)

	case hintTickMsg:
		return s.handleHintTick(msg)

	case tea.WindowSizeMsg:
		s.help.SetWidth(msg.Width)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// Engine returns the engine for the round in progress, nil before Init.
func (s *DivisionScreen) Engine() *longdiv.Engine {
	return s.engine
}

// Leave records the round in progress and stops its idle countdown.
// Pending timers still fire but are ignored once the screen is gone.
func (s *DivisionScreen) Leave() {
	if s.engine == nil {
		return
	}
	s.opts.Session.Record(s.engine.Result())
	s.hints.Cancel()
}

// newRound abandons the current round, if any, and starts the next one.
func (s *DivisionScreen) newRound() tea.Cmd {
	if s.engine != nil {
		s.opts.Session.Record(s.engine.Result())
	}
	s.hints.Cancel()
	s.transcript.Reset()

	p := s.nextProblem()
	s.engine = longdiv.New(p, longdiv.Options{
		Timing:  s.opts.Timing,
		Scorer:  s.opts.Session.Board(),
		Player:  s.opts.Player,
		Speaker: s.speaker,
		Idle:    s.hints,
		Logger:  s.opts.Logger,
	})
	s.rounds++
	s.engine.Start()
	return s.schedule(nil)
}

func (s *DivisionScreen) nextProblem() problemgen.Problem {
	if s.rounds == 0 && s.opts.First != nil {
		return *s.opts.First
	}
	return s.opts.Generator.Generate()
}

// schedule starts timers for fs and for a freshly armed idle countdown.
func (s *DivisionScreen) schedule(fs []longdiv.Followup) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(fs)+1)
	for _, f := range fs {
		cmds = append(cmds, followupCmd(s.tick, f))
	}
	if t, d, ok := s.hints.Next(); ok {
		cmds = append(cmds, hintCmd(s.tick, s.engine.RoundID(), t, d))
	}
	return tea.Batch(cmds...)
}

func (s *DivisionScreen) handleFollowup(msg followupMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil || msg.Followup.RoundID != s.engine.RoundID() {
		return s, nil
	}
	s.engine.Advance(msg.Followup)
	if s.engine.Done() {
		s.opts.Session.Record(s.engine.Result())
	}
	return s, s.schedule(nil)
}

func (s *DivisionScreen) handleHintTick(msg hintTickMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil || msg.RoundID != s.engine.RoundID() {
		return s, nil
	}
	s.hints.Fire(msg.Ticket, s.engine)
	return s, nil
}

func (s *DivisionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Digit):
		s.engine.HandleInput(int(msg.String()[0] - '0'))
		return s, s.schedule(nil)

	case key.Matches(msg, s.keys.Backspace):
		s.engine.HandleBackspace()
		return s, s.schedule(nil)

	case key.Matches(msg, s.keys.Submit):
		fs := s.engine.HandleEnter()
		if len(fs) > 0 {
			s.opts.Session.Record(s.engine.Result())
		}
		return s, s.schedule(fs)

	case key.Matches(msg, s.keys.NewRound):
		return s, s.newRound()

	case key.Matches(msg, s.keys.Finish):
		s.Leave()
		sum := s.opts.Session.Summary()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: newSummaryScreenAdapter(sum)}
		}

	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
		return s, nil
	}
	return s, nil
}
