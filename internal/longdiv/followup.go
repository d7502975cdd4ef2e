package longdiv

import (
	"time"

	"github.com/abhisek/divtutor/internal/grid"
)

// FollowupKind identifies delayed work the engine asks its caller to
// schedule.
type FollowupKind int

const (
	// FollowupClearWrong removes the rejection flash from Cells.
	FollowupClearWrong FollowupKind = iota

	// FollowupClearConnection ends the divisor/quotient highlight on Cells.
	FollowupClearConnection

	// FollowupRevealRemainder writes the remainder under the product and
	// carries down the next digit or finishes the round.
	FollowupRevealRemainder
)

func (k FollowupKind) String() string {
	switch k {
	case FollowupClearWrong:
		return "clear-wrong"
	case FollowupClearConnection:
		return "clear-connection"
	case FollowupRevealRemainder:
		return "reveal-remainder"
	default:
		return "unknown"
	}
}

// Followup is a deferred engine transition. The caller waits After and
// passes it back to Engine.Advance. Followups carry their round so that
// ones arriving after a new round started are dropped.
type Followup struct {
	RoundID string
	Kind    FollowupKind
	After   time.Duration
	Cells   []grid.Coord
}
