// Package config loads still's settings from the config file, the command
// line and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Meditation    MeditationConfig   `mapstructure:"meditation"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Log           LogConfig          `mapstructure:"log"`
		PathToConfig  string             `mapstructure:"-"`
		TracksDir     string             `mapstructure:"-"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// MeditationConfig holds timer settings
	MeditationConfig struct {
		Sound      string        `mapstructure:"sound"`
		SessionCmd string        `mapstructure:"session_cmd"`
		Duration   time.Duration `mapstructure:"-"`
		Chime      bool          `mapstructure:"chime"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"twenty_four_hour"`
	}

	// StorageConfig selects the database backend
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DefaultDuration = 5 * time.Minute
	DefaultDriver   = "bolt"
	DefaultLevel    = "info"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// WithTracksDir sets the directory searched for ambient tracks.
func WithTracksDir(dir string) Option {
	return func(c *Config) error {
		c.TracksDir = dir
		return nil
	}
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
