// Package feedback defines the capabilities the tutor uses to reward and
// talk to the learner, plus the implementations wired by the app.
package feedback

// Cue names an audio cue.
type Cue string

const (
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
)

// Scorer accumulates points.
type Scorer interface {
	Award(points int)
}

// Player plays audio cues. Best-effort: callers never check success.
type Player interface {
	Play(cue Cue)
}

// Speaker delivers spoken or written feedback. Fire-and-forget.
type Speaker interface {
	Speak(text string)
}

// Nop implements every capability and does nothing.
type Nop struct{}

func (Nop) Award(int)    {}
func (Nop) Play(Cue)     {}
func (Nop) Speak(string) {}

var (
	_ Scorer  = Nop{}
	_ Player  = Nop{}
	_ Speaker = Nop{}
)

// MultiSpeaker fans every utterance out to each speaker in order.
type MultiSpeaker []Speaker

func (m MultiSpeaker) Speak(text string) {
	for _, s := range m {
		if s != nil {
			s.Speak(text)
		}
	}
}
