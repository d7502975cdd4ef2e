package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// DIVTUTOR_TUTOR_IDLE_HINT_DELAY.
const EnvPrefix = "DIVTUTOR"

const fileName = "divtutor"

func setDefaults(v *viper.Viper) {
	v.SetDefault("tutor.idle_hint_delay", "5s")
	v.SetDefault("tutor.wrong_flash", "500ms")
	v.SetDefault("tutor.connect_pulse", "1s")
	v.SetDefault("tutor.reveal_delay", "1s")
	v.SetDefault("tutor.completion_points", 100)
	v.SetDefault("speech.command", "")
	v.SetDefault("speech.args", []string{})
	v.SetDefault("audio.bell", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads configuration. When path is empty, divtutor.yaml is looked up
// in the user config directory and its absence is not an error. An explicit
// path must exist. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, fileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Level = normalizeLevel(cfg.Log.Level)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// normalizeLevel accepts level names in any case, and "warning" for warn.
func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}
