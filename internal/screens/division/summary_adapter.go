package division

import (
	"github.com/abhisek/divtutor/internal/screen"
	"github.com/abhisek/divtutor/internal/screens/summary"
	"github.com/abhisek/divtutor/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from session data.
func newSummaryScreenAdapter(s *session.Summary) screen.Screen {
	return summary.New(s)
}
