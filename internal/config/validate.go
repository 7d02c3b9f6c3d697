package config

import (
	"slices"
	"strings"
	"time"

	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
)

var (
	// Minimum and maximum duration constraints.
	minDuration = 1 * time.Second
	maxDuration = 720 * time.Minute // 12 hours

	drivers   = []string{"bolt", "sqlite"}
	logLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Meditation.Duration < minDuration || c.Meditation.Duration > maxDuration {
		return errInvalidDuration.Fmt(minDuration, maxDuration)
	}

	if !slices.Contains(drivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(c.Storage.Driver)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errUnknownLevel.Fmt(c.Log.Level)
	}

	if _, err := sound.Lookup(c.TracksDir, c.Meditation.Sound); err != nil {
		return err
	}

	return nil
}
