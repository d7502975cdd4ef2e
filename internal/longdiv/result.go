package longdiv

import (
	"time"

	"github.com/abhisek/divtutor/internal/problemgen"
)

// Step records one completed quotient-digit cycle.
type Step struct {
	// Col is the quotient column the digit was written in.
	Col int

	// Window is the working value the digit divided.
	Window int

	Digit     int
	Product   int
	Remainder int

	// ProductRow is the row the product was written on; the remainder
	// sits on the row below.
	ProductRow int

	// BroughtDown is the digit carried down after this step, or -1.
	BroughtDown int
}

// Result summarizes a round for scoring and the session summary.
type Result struct {
	RoundID     string
	Problem     problemgen.Problem
	Quotient    int
	Complete    bool
	Submissions int
	Mistakes    int
	Hints       int
	Started     time.Time
	Finished    time.Time
}

// Duration returns how long the round took, or zero if unfinished.
func (r Result) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}
