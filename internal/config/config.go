package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Front ends.
const (
	UILine = "line"
	UITUI  = "tui"
)

// Log levels. LevelOff disables session event logging.
const (
	LevelOff   = "off"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
)

const maxPrecision = 15

type Config struct {
	Precision  int       `yaml:"precision"`
	TimeFormat string    `yaml:"time_format"`
	AnsToken   string    `yaml:"ans_token"`
	UI         string    `yaml:"ui"`
	Log        LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Precision:  6,
		TimeFormat: "15:04:05",
		AnsToken:   "ans",
		UI:         UILine,
		Log: LogConfig{
			Level: LevelOff,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults without touching the filesystem.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, c.Precision)
	}
	if strings.TrimSpace(c.TimeFormat) == "" {
		return fmt.Errorf("time_format must not be empty")
	}
	if strings.TrimSpace(c.AnsToken) == "" {
		return fmt.Errorf("ans_token must not be empty")
	}
	switch c.UI {
	case UILine, UITUI:
	default:
		return fmt.Errorf("unknown ui %q (want %q or %q)", c.UI, UILine, UITUI)
	}
	if _, _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps Log.Level to a slog level. The boolean is false when
// logging is off.
func (c *Config) SlogLevel() (slog.Level, bool, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", LevelOff:
		return 0, false, nil
	case LevelDebug:
		return slog.LevelDebug, true, nil
	case LevelInfo:
		return slog.LevelInfo, true, nil
	case LevelWarn:
		return slog.LevelWarn, true, nil
	default:
		return 0, false, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
}
