// Package logger builds the application's structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/divtutor/internal/config"
)

// ParseLevel maps a case-insensitive level name to a slog.Level. ok is
// false for unknown names, which map to info.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup creates the logger described by cfg and installs it as the slog
// default. With no log file configured every record is discarded, because
// the terminal belongs to the TUI. The returned close func releases the
// log file and is always safe to call.
func Setup(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	if cfg.File == "" {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, noop, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}

	level, ok := ParseLevel(cfg.Level)
	logger := New(f, level)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	slog.SetDefault(logger)
	return logger, f.Close, nil
}
