package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/divtutor/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" Warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, "level for %q", tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
	}
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Info("dropped")
	l.Warn("kept", "round_id", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "abc", rec["round_id"])
}

func TestSetup_NoFileDiscards(t *testing.T) {
	l, closeFn, err := Setup(config.LogConfig{Level: "debug"})
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.DiscardHandler)) })

	require.NoError(t, err)
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closeFn())
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "divtutor.log")
	l, closeFn, err := Setup(config.LogConfig{Level: "bogus", File: path})
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.DiscardHandler)) })
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("round started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "invalid log level configured")
	assert.Contains(t, out, "round started")
	assert.NotContains(t, out, "hidden")
}

func TestSetup_UnwritablePath(t *testing.T) {
	_, closeFn, err := Setup(config.LogConfig{Level: "info", File: filepath.Join(t.TempDir(), "missing", "x.log")})

	require.Error(t, err)
	assert.NoError(t, closeFn())
}
