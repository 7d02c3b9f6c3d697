package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyDuration             = "meditation.duration"
	keySound                = "meditation.sound"
	keyChime                = "meditation.chime"
	keySessionCmd           = "meditation.session_cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.twenty_four_hour"
	keyStorageDriver        = "storage.driver"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A default config file is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDuration, DefaultDuration.String())
	v.SetDefault(keySound, "")
	v.SetDefault(keyChime, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyStorageDriver, DefaultDriver)
	v.SetDefault(keyLogLevel, DefaultLevel)

	if c.Meditation.Duration != 0 {
		v.Set(keyDuration, c.Meditation.Duration.String())
	}

	if c.Meditation.Sound != "" {
		v.Set(keySound, c.Meditation.Sound)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	dur, err := ParseDuration(v.GetString(keyDuration))
	if err != nil {
		return err
	}

	c.Meditation.Duration = dur
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	return nil
}

// ParseDuration accepts Go duration strings or a bare number of minutes.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, errParseDuration.Fmt(s)
	}

	return mins, nil
}
