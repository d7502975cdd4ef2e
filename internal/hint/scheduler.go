// Package hint implements the idle countdown that nudges a learner who has
// stopped typing.
//
// The Scheduler owns no goroutines or timers. Reset arms a new window and
// hands out a Ticket through Next; the caller starts whatever timer fits its
// runtime (tea.Tick in the TUI) and calls Fire with the ticket when it
// expires. Tickets from superseded windows are ignored, so at most one
// countdown is ever live.
package hint

import "time"

// DefaultDelay is the idle interval before a hint is requested.
const DefaultDelay = 5 * time.Second

// Requester produces a hint on demand. It reports whether a hint was given.
type Requester interface {
	RequestHint() bool
}

// Ticket identifies one countdown window.
type Ticket struct {
	Window uint64
}

// Scheduler is a resettable, cancelable idle countdown.
type Scheduler struct {
	delay   time.Duration
	window  uint64
	live    bool
	fired   bool
	pending bool
}

// New creates a Scheduler with the given idle delay.
func New(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{delay: delay}
}

// Delay returns the idle interval.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Reset cancels any pending countdown and arms a fresh one.
func (s *Scheduler) Reset() {
	s.window++
	s.live = true
	s.fired = false
	s.pending = true
}

// Cancel disarms the countdown. Outstanding tickets become stale.
func (s *Scheduler) Cancel() {
	s.window++
	s.live = false
	s.pending = false
}

// Live reports whether a countdown is armed and has not fired.
func (s *Scheduler) Live() bool {
	return s.live && !s.fired
}

// Next returns the ticket for a window armed since the last call, with
// the delay after which it should be fired. ok is false when nothing new
// needs a timer.
func (s *Scheduler) Next() (t Ticket, delay time.Duration, ok bool) {
	if !s.pending {
		return Ticket{}, 0, false
	}
	s.pending = false
	return Ticket{Window: s.window}, s.delay, true
}

// Fire requests a hint from target if ticket belongs to the live window
// and that window has not fired yet. It returns whether target was asked.
func (s *Scheduler) Fire(t Ticket, target Requester) bool {
	if !s.live || s.fired || t.Window != s.window {
		return false
	}
	s.fired = true
	if target == nil {
		return false
	}
	target.RequestHint()
	return true
}
