// Package session tracks one run of the tutor: the rounds played, in
// order, and the score board they feed.
package session

import (
	"sync"
	"time"

	"github.com/abhisek/divtutor/internal/longdiv"
	"github.com/abhisek/divtutor/internal/score"
)

// Session records round results for the summary screen. It is safe for
// concurrent use.
type Session struct {
	mu      sync.Mutex
	board   *score.Board
	started time.Time
	rounds  []longdiv.Result
	index   map[string]int
	now     func() time.Time
}

// New starts a session that reports points from board.
func New(board *score.Board) *Session {
	return newWithClock(board, time.Now)
}

func newWithClock(board *score.Board, now func() time.Time) *Session {
	if board == nil {
		board = score.NewBoard()
	}
	return &Session{
		board:   board,
		started: now(),
		index:   make(map[string]int),
		now:     now,
	}
}

// Board returns the score board shared with the step engines.
func (s *Session) Board() *score.Board {
	return s.board
}

// Record stores a round result. Recording the same round again replaces
// the earlier entry, so an abandoned round later finished counts once.
// Rounds with no submissions are ignored.
func (s *Session) Record(r longdiv.Result) {
	if r.Submissions == 0 && !r.Complete {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[r.RoundID]; ok {
		s.rounds[i] = r
		return
	}
	s.index[r.RoundID] = len(s.rounds)
	s.rounds = append(s.rounds, r)
}

// Rounds returns the recorded results in play order.
func (s *Session) Rounds() []longdiv.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]longdiv.Result, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.started)
}
