package score

// Badge is the tier shown next to the streak counter.
type Badge string

const (
	BadgeNone   Badge = ""
	BadgeBronze Badge = "bronze"
	BadgeSilver Badge = "silver"
	BadgeGold   Badge = "gold"
	BadgeComet  Badge = "comet"
)

// DisplayName returns a human-readable label for the badge.
func (b Badge) DisplayName() string {
	switch b {
	case BadgeBronze:
		return "Bronze"
	case BadgeSilver:
		return "Silver"
	case BadgeGold:
		return "Gold"
	case BadgeComet:
		return "Comet"
	default:
		return "—"
	}
}

// StreakBadge returns the badge for a streak length.
func StreakBadge(length int) Badge {
	switch {
	case length >= 10:
		return BadgeComet
	case length >= 6:
		return BadgeGold
	case length >= 3:
		return BadgeSilver
	case length >= 1:
		return BadgeBronze
	default:
		return BadgeNone
	}
}
