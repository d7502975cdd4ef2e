package session

import (
	"time"

	"github.com/abhisek/divtutor/internal/longdiv"
	"github.com/abhisek/divtutor/internal/score"
)

// Progress counts quotient-digit submissions and how many were right.
type Progress struct {
	Submissions int
	Correct     int
	Accuracy    float64 // Correct / Submissions (computed)
}

// Add folds one round's submissions into the progress.
func (p *Progress) Add(r longdiv.Result) {
	p.Submissions += r.Submissions
	p.Correct += r.Submissions - r.Mistakes
	if p.Submissions > 0 {
		p.Accuracy = float64(p.Correct) / float64(p.Submissions)
	}
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration   time.Duration
	Rounds     int
	Completed  int
	Hints      int
	Progress   Progress
	Points     int
	BestStreak int
	Badge      score.Badge
	Results    []longdiv.Result
}

// Summary builds the end-of-session report.
func (s *Session) Summary() *Summary {
	results := s.Rounds()

	sum := &Summary{
		Duration:   s.Elapsed(),
		Rounds:     len(results),
		Points:     s.board.Total(),
		BestStreak: s.board.BestStreak(),
		Badge:      score.StreakBadge(s.board.BestStreak()),
		Results:    results,
	}
	for _, r := range results {
		if r.Complete {
			sum.Completed++
		}
		sum.Hints += r.Hints
		sum.Progress.Add(r)
	}
	return sum
}
