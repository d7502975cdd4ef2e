// Package config loads divtutor settings from defaults, an optional YAML
// file and DIVTUTOR_* environment variables.
package config

import (
	"time"

	"github.com/abhisek/divtutor/internal/longdiv"
)

// Config holds all application configuration.
type Config struct {
	Tutor  TutorConfig  `mapstructure:"tutor" validate:"required"`
	Speech SpeechConfig `mapstructure:"speech"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
}

// TutorConfig controls round pacing and scoring.
type TutorConfig struct {
	IdleHintDelay    time.Duration `mapstructure:"idle_hint_delay" validate:"gt=0"`
	WrongFlash       time.Duration `mapstructure:"wrong_flash" validate:"gt=0"`
	ConnectPulse     time.Duration `mapstructure:"connect_pulse" validate:"gt=0"`
	RevealDelay      time.Duration `mapstructure:"reveal_delay" validate:"gt=0"`
	CompletionPoints int           `mapstructure:"completion_points" validate:"gt=0"`
}

// Timing converts the pacing settings for the step engine.
func (c TutorConfig) Timing() longdiv.Timing {
	return longdiv.Timing{
		WrongFlash:       c.WrongFlash,
		ConnectPulse:     c.ConnectPulse,
		RevealDelay:      c.RevealDelay,
		CompletionPoints: c.CompletionPoints,
	}
}

// SpeechConfig names an external text-to-speech command. The spoken text
// is appended as the last argument. An empty command disables speech.
type SpeechConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// AudioConfig toggles the terminal bell cues.
type AudioConfig struct {
	Bell bool `mapstructure:"bell"`
}

// LogConfig selects the log level and destination. An empty file discards
// all output, since the TUI owns the terminal.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}
