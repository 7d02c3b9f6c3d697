package config

import (
	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	Sound         string
	SessionCmd    string
	DisableNotify bool
	NoChime       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.String("duration"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoChime:       ctx.Bool("no-chime"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		dur, err := ParseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Wrap(err)
		}

		c.Meditation.Duration = dur
	}

	if opts.Sound != "" {
		if opts.Sound == sound.Off {
			c.Meditation.Sound = ""
		} else {
			c.Meditation.Sound = opts.Sound
		}
	}

	if opts.SessionCmd != "" {
		c.Meditation.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoChime {
		c.Meditation.Chime = false
	}

	return nil
}
