package feedback

import (
	"io"
	"log/slog"
)

// Bell plays cues by writing the terminal bell character. A correct answer
// rings once, a wrong one twice.
type Bell struct {
	w      io.Writer
	logger *slog.Logger
}

var _ Player = (*Bell)(nil)

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer, logger *slog.Logger) *Bell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bell{w: w, logger: logger}
}

func (b *Bell) Play(cue Cue) {
	seq := "\a"
	if cue == CueWrong {
		seq = "\a\a"
	}
	if _, err := io.WriteString(b.w, seq); err != nil {
		b.logger.Debug("bell write failed", "cue", string(cue), "error", err)
	}
}
