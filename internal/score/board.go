// Package score accumulates the learner's points across rounds.
package score

import "github.com/abhisek/divtutor/internal/feedback"

// Board tracks points and the streak of consecutive rewarded rounds.
// Positive awards extend the streak; zero or negative awards break it.
type Board struct {
	total      int
	streak     int
	bestStreak int
}

var _ feedback.Scorer = (*Board)(nil)

// NewBoard creates an empty Board.
func NewBoard() *Board {
	return &Board{}
}

// Award adds points and updates the streak.
func (b *Board) Award(points int) {
	b.total += points
	if points > 0 {
		b.streak++
		if b.streak > b.bestStreak {
			b.bestStreak = b.streak
		}
		return
	}
	b.streak = 0
}

// Total returns the accumulated points.
func (b *Board) Total() int { return b.total }

// Streak returns the current streak.
func (b *Board) Streak() int { return b.streak }

// BestStreak returns the longest streak seen.
func (b *Board) BestStreak() int { return b.bestStreak }

// Badge returns the badge earned by the current streak.
func (b *Board) Badge() Badge {
	return StreakBadge(b.streak)
}
