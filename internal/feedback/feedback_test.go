package feedback

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBell_Play(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, nil)

	b.Play(CueCorrect)
	assert.Equal(t, "\a", buf.String())

	buf.Reset()
	b.Play(CueWrong)
	assert.Equal(t, "\a\a", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBell_WriteErrorIsSwallowed(t *testing.T) {
	b := NewBell(failingWriter{}, nil)
	assert.NotPanics(t, func() { b.Play(CueCorrect) })
}

func TestTranscript(t *testing.T) {
	tr := NewTranscript(3)
	assert.Equal(t, "", tr.Last())

	for _, s := range []string{"a", "b", "c", "d"} {
		tr.Speak(s)
	}
	assert.Equal(t, "d", tr.Last())
	assert.Equal(t, []string{"b", "c", "d"}, tr.Lines())

	tr.Reset()
	assert.Empty(t, tr.Lines())
}

func TestMultiSpeaker(t *testing.T) {
	a, b := NewTranscript(0), NewTranscript(0)
	m := MultiSpeaker{a, nil, b}

	m.Speak("hello")

	assert.Equal(t, "hello", a.Last())
	assert.Equal(t, "hello", b.Last())
}

func TestCommandSpeaker_DisabledWithoutCommand(t *testing.T) {
	s := NewCommandSpeaker("", nil, nil)
	require.False(t, s.Enabled())

	s.Speak("ignored")
	assert.NoError(t, s.Close())
}

func TestCommandSpeaker_MissingBinaryIsSwallowed(t *testing.T) {
	s := NewCommandSpeaker("divtutor-no-such-tts-binary", []string{"-v", "x"}, nil)
	require.True(t, s.Enabled())

	assert.NotPanics(t, func() { s.Speak("hello") })
	assert.NoError(t, s.Close())
}
