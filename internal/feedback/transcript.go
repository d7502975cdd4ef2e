package feedback

import "sync"

// DefaultTranscriptSize is how many utterances a Transcript keeps.
const DefaultTranscriptSize = 20

// Transcript keeps the most recent utterances so the UI can show them in
// the helper bubble.
type Transcript struct {
	mu    sync.Mutex
	lines []string
	max   int
}

var _ Speaker = (*Transcript)(nil)

// NewTranscript creates a Transcript holding at most max lines.
func NewTranscript(max int) *Transcript {
	if max <= 0 {
		max = DefaultTranscriptSize
	}
	return &Transcript{max: max}
}

func (t *Transcript) Speak(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, text)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

// Last returns the most recent utterance, or "" if none.
func (t *Transcript) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lines) == 0 {
		return ""
	}
	return t.lines[len(t.lines)-1]
}

// Lines returns a copy of the retained utterances, oldest first.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Reset drops every retained utterance.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}
