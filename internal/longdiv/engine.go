// Package longdiv drives one long-division round digit by digit: it lays
// out the tableau, validates each quotient digit, reveals the product and
// remainder rows, carries down the next digit and finishes the round.
//
// The engine is single-threaded and never blocks. Anything that must happen
// later (clearing a flash, the staged remainder reveal) is returned to the
// caller as a Followup to schedule and feed back through Advance.
package longdiv

import (
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/divtutor/internal/feedback"
	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/problemgen"
)

// Phase is the engine's state.
type Phase int

const (
	// PhaseReady is a laid-out round that has not been started.
	PhaseReady Phase = iota
	PhaseAwaitingDigit
	PhaseValidating
	PhaseRevealed
	PhaseCarryDown
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseAwaitingDigit:
		return "awaiting-digit"
	case PhaseValidating:
		return "validating"
	case PhaseRevealed:
		return "revealed"
	case PhaseCarryDown:
		return "carry-down"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// IdleTimer is the part of the hint scheduler the engine drives.
type IdleTimer interface {
	Reset()
	Cancel()
}

// Timing holds the fixed delays and the completion award.
type Timing struct {
	WrongFlash       time.Duration
	ConnectPulse     time.Duration
	RevealDelay      time.Duration
	CompletionPoints int
}

// DefaultTiming returns the tutor's standard pacing.
func DefaultTiming() Timing {
	return Timing{
		WrongFlash:       500 * time.Millisecond,
		ConnectPulse:     time.Second,
		RevealDelay:      time.Second,
		CompletionPoints: 100,
	}
}

// Options injects the engine's collaborators. Nil fields get no-op
// implementations.
type Options struct {
	Timing  Timing
	Scorer  feedback.Scorer
	Player  feedback.Player
	Speaker feedback.Speaker
	Idle    IdleTimer
	Logger  *slog.Logger

	// Observer, if set, sees every cell change including the initial layout.
	Observer grid.Observer

	// Now overrides the clock, for tests.
	Now func() time.Time
}

type pendingReveal struct {
	remainder int
	row       int
	alignCol  int
}

// Engine is the long-division state machine for one round.
type Engine struct {
	problem     problemgen.Problem
	grid        *grid.Grid
	divisorCols int

	timing  Timing
	scorer  feedback.Scorer
	player  feedback.Player
	speaker feedback.Speaker
	idle    IdleTimer
	logger  *slog.Logger
	now     func() time.Time

	roundID    string
	phase      Phase
	cursor     Cursor
	pendingVal int
	reveal     *pendingReveal
	flashes    map[grid.Coord]int
	quotient   map[int]int
	steps      []Step

	started     time.Time
	finished    time.Time
	submissions int
	mistakes    int
	hints       int
}

// New lays out p on a fresh grid and returns an engine ready to Start.
func New(p problemgen.Problem, opts Options) *Engine {
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	if opts.Scorer == nil {
		opts.Scorer = feedback.Nop{}
	}
	if opts.Player == nil {
		opts.Player = feedback.Nop{}
	}
	if opts.Speaker == nil {
		opts.Speaker = feedback.Nop{}
	}
	if opts.Idle == nil {
		opts.Idle = nopIdle{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	roundID := uuid.NewString()
	g := grid.New()
	if opts.Observer != nil {
		g.Observe(opts.Observer)
	}
	e := &Engine{
		problem:     p,
		grid:        g,
		divisorCols: len(p.DivisorDigits()),
		timing:      opts.Timing,
		scorer:      opts.Scorer,
		player:      opts.Player,
		speaker:     opts.Speaker,
		idle:        opts.Idle,
		logger:      opts.Logger.With("round_id", roundID),
		now:         opts.Now,
		roundID:     roundID,
		phase:       PhaseReady,
		quotient:    make(map[int]int),
		flashes:     make(map[grid.Coord]int),
	}
	e.cursor = Layout(g, p)
	return e
}

// Start announces the problem and waits for the first quotient digit.
// Only the first call has any effect.
func (e *Engine) Start() {
	if e.phase != PhaseReady {
		return
	}
	e.started = e.now()
	e.logger.Info("round started",
		"dividend", e.problem.Dividend,
		"divisor", e.problem.Divisor,
		"first_window", e.cursor.CurrentDividendVal)
	e.speaker.Speak(introText(e.problem.Dividend, e.problem.Divisor))
	e.enterAwaitingDigit(e.cursor.ActiveCol)
}

// HandleInput records a digit keypress as the pending entry, replacing any
// previous one. Values outside 0–9 are kept and rejected on submit.
func (e *Engine) HandleInput(val int) {
	if e.phase != PhaseAwaitingDigit {
		return
	}
	e.pendingVal = val
	e.cursor.PendingInput = strconv.Itoa(val)
	e.grid.SetContent(e.cursor.ActiveRow, e.cursor.ActiveCol, e.cursor.PendingInput)
	e.idle.Reset()
}

// HandleBackspace clears the pending entry.
func (e *Engine) HandleBackspace() {
	if e.phase != PhaseAwaitingDigit {
		return
	}
	e.pendingVal = 0
	e.cursor.PendingInput = ""
	e.grid.SetContent(e.cursor.ActiveRow, e.cursor.ActiveCol, "?")
	e.idle.Reset()
}

// HandleEnter submits the pending entry. An empty submission is ignored.
// The returned followups must be scheduled by the caller.
func (e *Engine) HandleEnter() []Followup {
	if e.phase != PhaseAwaitingDigit || e.cursor.PendingInput == "" {
		return nil
	}
	e.idle.Reset()
	return e.submitDigit(e.pendingVal)
}

// Advance applies a followup previously returned by the engine. Followups
// from another round, or for a stage already passed, are ignored.
func (e *Engine) Advance(f Followup) {
	if f.RoundID != e.roundID {
		return
	}
	switch f.Kind {
	case FollowupClearWrong:
		// Overlapping flashes on one cell share the tag; the last to
		// expire clears it.
		for _, c := range f.Cells {
			if e.flashes[c] > 1 {
				e.flashes[c]--
				continue
			}
			delete(e.flashes, c)
			e.grid.RemoveTag(c.Row, c.Col, grid.TagWrong)
		}
	case FollowupClearConnection:
		for _, c := range f.Cells {
			e.grid.RemoveTag(c.Row, c.Col, grid.TagHighlight)
		}
	case FollowupRevealRemainder:
		if e.phase != PhaseRevealed || e.reveal == nil {
			return
		}
		r := e.reveal
		e.reveal = nil
		e.revealRemainder(r.remainder, r.row, r.alignCol)
	}
}

// Hint returns the context-sensitive hint for the active input cell.
// ok is false when no cell is awaiting input.
func (e *Engine) Hint() (text string, ok bool) {
	if e.phase != PhaseAwaitingDigit {
		return "", false
	}
	if e.cursor.ActiveRow == QuotientRow {
		return quotientHintText(e.cursor.CurrentDividendVal, e.problem.Divisor), true
	}
	return genericHintText, true
}

// RequestHint speaks the current hint. It does not change engine state.
func (e *Engine) RequestHint() bool {
	text, ok := e.Hint()
	if !ok {
		return false
	}
	e.hints++
	e.logger.Debug("idle hint", "current", e.cursor.CurrentDividendVal)
	e.speaker.Speak(text)
	return true
}

func (e *Engine) enterAwaitingDigit(col int) {
	row := QuotientRow
	if !e.grid.Has(row, col) {
		e.grid.Place(row, col, "")
	}
	e.grid.SetContent(row, col, "?")
	e.grid.AddTag(row, col, grid.TagActive)

	e.cursor.ActiveRow = row
	e.cursor.ActiveCol = col
	e.cursor.PendingInput = ""
	e.pendingVal = 0
	e.phase = PhaseAwaitingDigit

	e.idle.Reset()
	e.speaker.Speak(promptText(e.cursor.CurrentDividendVal, e.problem.Divisor))
}

func (e *Engine) submitDigit(val int) []Followup {
	e.phase = PhaseValidating
	e.submissions++

	row, col := e.cursor.ActiveRow, e.cursor.ActiveCol
	correct := e.cursor.CurrentDividendVal / e.problem.Divisor
	e.logger.Debug("digit submitted", "col", col, "value", val, "window", e.cursor.CurrentDividendVal)

	if val != correct {
		return e.reject(val, correct)
	}

	e.grid.RemoveTag(row, col, grid.TagActive)
	e.grid.AddTag(row, col, grid.TagCorrect)
	e.quotient[col] = val
	e.cursor.PendingInput = ""

	e.player.Play(feedback.CueCorrect)
	e.speaker.Speak(correctText(val, e.problem.Divisor))

	pulse := e.connect(row, col)
	e.phase = PhaseRevealed
	reveal := e.revealProduct(val*e.problem.Divisor, e.cursor.CalculationRow, col)
	return []Followup{pulse, reveal}
}

func (e *Engine) reject(val, correct int) []Followup {
	row, col := e.cursor.ActiveRow, e.cursor.ActiveCol
	e.mistakes++
	e.grid.AddTag(row, col, grid.TagWrong)
	e.flashes[grid.Coord{Row: row, Col: col}]++
	e.player.Play(feedback.CueWrong)
	if val > correct {
		e.speaker.Speak(tooBigText(e.cursor.CurrentDividendVal))
	} else {
		e.speaker.Speak(tooSmallText(e.problem.Divisor))
	}
	e.logger.Info("digit rejected", "col", col, "value", val, "window", e.cursor.CurrentDividendVal)
	e.phase = PhaseAwaitingDigit

	return []Followup{{
		RoundID: e.roundID,
		Kind:    FollowupClearWrong,
		After:   e.timing.WrongFlash,
		Cells:   []grid.Coord{{Row: row, Col: col}},
	}}
}

// connect highlights the divisor and the accepted quotient digit together.
func (e *Engine) connect(row, col int) Followup {
	cells := make([]grid.Coord, 0, e.divisorCols+1)
	for c := 0; c < e.divisorCols; c++ {
		cells = append(cells, grid.Coord{Row: DividendRow, Col: c})
	}
	cells = append(cells, grid.Coord{Row: row, Col: col})
	for _, c := range cells {
		e.grid.AddTag(c.Row, c.Col, grid.TagHighlight)
	}
	return Followup{
		RoundID: e.roundID,
		Kind:    FollowupClearConnection,
		After:   e.timing.ConnectPulse,
		Cells:   cells,
	}
}

func (e *Engine) revealProduct(product, row, alignCol int) Followup {
	e.placeRightAligned(product, row, alignCol, grid.TagBorderBottom)

	current := e.cursor.CurrentDividendVal
	remainder := current - product
	if remainder < 0 || remainder >= e.problem.Divisor {
		e.logger.Error("remainder out of range",
			"window", current, "product", product, "divisor", e.problem.Divisor)
	}

	e.steps = append(e.steps, Step{
		Col:         alignCol,
		Window:      current,
		Digit:       product / e.problem.Divisor,
		Product:     product,
		Remainder:   remainder,
		ProductRow:  row,
		BroughtDown: -1,
	})
	e.speaker.Speak(subtractText(current, product))

	e.reveal = &pendingReveal{remainder: remainder, row: row + 1, alignCol: alignCol}
	return Followup{
		RoundID: e.roundID,
		Kind:    FollowupRevealRemainder,
		After:   e.timing.RevealDelay,
	}
}

func (e *Engine) revealRemainder(remainder, row, alignCol int) {
	e.placeRightAligned(remainder, row, alignCol)
	e.phase = PhaseCarryDown

	next := alignCol + 1
	idx := next - e.divisorCols
	if idx < len(e.problem.Digits) {
		digit := e.problem.Digits[idx]
		e.grid.Place(row-1, next, "↓")
		e.grid.Place(row, next, strconv.Itoa(digit), grid.TagCarried)

		e.cursor.CurrentDividendVal = remainder*10 + digit
		e.cursor.CalculationRow = row + 1
		e.steps[len(e.steps)-1].BroughtDown = digit

		e.speaker.Speak(carryDownText(digit, e.cursor.CurrentDividendVal, e.problem.Divisor))
		e.enterAwaitingDigit(next)
		return
	}

	e.finish()
}

func (e *Engine) finish() {
	e.phase = PhaseTerminal
	e.finished = e.now()
	e.idle.Cancel()

	q := e.Quotient()
	e.logger.Info("round complete",
		"quotient", q,
		"submissions", e.submissions,
		"mistakes", e.mistakes,
		"hints", e.hints)
	e.speaker.Speak(completeText(e.problem.Dividend, e.problem.Divisor, q))
	e.scorer.Award(e.timing.CompletionPoints)
}

// placeRightAligned writes n's digits so the least-significant one lands
// in alignCol.
func (e *Engine) placeRightAligned(n, row, alignCol int, tags ...grid.Tag) {
	s := strconv.Itoa(n)
	for i := 0; i < len(s); i++ {
		e.grid.Place(row, alignCol-i, string(s[len(s)-1-i]), tags...)
	}
}

// Quotient assembles the accepted quotient digits in column order.
func (e *Engine) Quotient() int {
	cols := make([]int, 0, len(e.quotient))
	for c := range e.quotient {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	q := 0
	for _, c := range cols {
		q = q*10 + e.quotient[c]
	}
	return q
}

// Phase returns the current state.
func (e *Engine) Phase() Phase { return e.phase }

// Done reports whether the round reached its terminal state.
func (e *Engine) Done() bool { return e.phase == PhaseTerminal }

// Cursor returns a copy of the step cursor.
func (e *Engine) Cursor() Cursor { return e.cursor }

// Grid returns the tableau. Callers must treat it as read-only.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Problem returns the round's problem.
func (e *Engine) Problem() problemgen.Problem { return e.problem }

// RoundID returns the unique id of this round.
func (e *Engine) RoundID() string { return e.roundID }

// Steps returns the completed quotient-digit cycles in order.
func (e *Engine) Steps() []Step {
	out := make([]Step, len(e.steps))
	copy(out, e.steps)
	return out
}

// DigitsTotal returns how many quotient digits the round will need.
func (e *Engine) DigitsTotal() int {
	_, length := firstWindow(e.problem)
	return len(e.problem.Digits) - length + 1
}

// DigitsDone returns how many quotient digits have been accepted.
func (e *Engine) DigitsDone() int { return len(e.quotient) }

// Result summarizes the round so far.
func (e *Engine) Result() Result {
	return Result{
		RoundID:     e.roundID,
		Problem:     e.problem,
		Quotient:    e.Quotient(),
		Complete:    e.phase == PhaseTerminal,
		Submissions: e.submissions,
		Mistakes:    e.mistakes,
		Hints:       e.hints,
		Started:     e.started,
		Finished:    e.finished,
	}
}

type nopIdle struct{}

func (nopIdle) Reset()  {}
func (nopIdle) Cancel() {}
