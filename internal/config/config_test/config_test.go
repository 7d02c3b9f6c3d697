package config_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/config"
	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
)

type TestCase struct {
	Want   *config.Config
	Name   string
	Config string
	Args   []string
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig(configPath string) *config.Config {
	return &config.Config{
		Meditation: config.MeditationConfig{
			Duration: 5 * time.Minute,
			Chime:    true,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Storage: config.StorageConfig{
			Driver: "bolt",
		},
		Log: config.LogConfig{
			Level: "info",
		},
		PathToConfig: configPath,
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	if content != "" {
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	}

	return configPath
}

// cliContext parses args against the meditation flags.
func cliContext(t *testing.T, args []string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("still", flag.ContinueOnError)
	set.String("duration", "", "")
	set.String("sound", "", "")
	set.String("session-cmd", "", "")
	set.Bool("disable-notification", false, "")
	set.Bool("no-chime", false, "")

	require.NoError(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestViperWriteConfig(t *testing.T) {
	configPath := writeConfig(t, "")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config file is written")

	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	cases := []TestCase{
		{
			Name: "read a modified config file",
			Config: `meditation:
  duration: 20m
  sound: Ocean Waves
  chime: false
  session_cmd: notify-send done
notifications:
  enabled: false
display:
  dark_theme: false
  twenty_four_hour: true
storage:
  driver: SQLite
log:
  level: debug
`,
			Want: &config.Config{
				Meditation: config.MeditationConfig{
					Duration:   20 * time.Minute,
					Sound:      "Ocean Waves",
					SessionCmd: "notify-send done",
				},
				Display: config.DisplayConfig{
					TwentyFourHour: true,
				},
				Storage: config.StorageConfig{Driver: "sqlite"},
				Log:     config.LogConfig{Level: "debug"},
			},
		},
		{
			Name: "bare minutes and missing keys",
			Config: `meditation:
  duration: 15
`,
			Want: func() *config.Config {
				c := defaultConfig("")
				c.Meditation.Duration = 15 * time.Minute

				return c
			}(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := writeConfig(t, tc.Config)
			tc.Want.PathToConfig = configPath

			cfg, err := config.New(config.WithViperConfig(configPath))
			require.NoError(t, err)

			assert.Equal(t, tc.Want, cfg)
		})
	}
}

func TestCLIOverrides(t *testing.T) {
	configPath := writeConfig(t, `meditation:
  sound: rain
`)

	cases := []TestCase{
		{
			Name: "no flags keeps the file values",
			Want: func() *config.Config {
				c := defaultConfig(configPath)
				c.Meditation.Sound = "rain"

				return c
			}(),
		},
		{
			Name: "flags override the file",
			Args: []string{
				"--duration", "90s",
				"--sound", "off",
				"--session-cmd", "echo done",
				"--disable-notification",
				"--no-chime",
			},
			Want: func() *config.Config {
				c := defaultConfig(configPath)
				c.Meditation.Duration = 90 * time.Second
				c.Meditation.SessionCmd = "echo done"
				c.Meditation.Chime = false
				c.Notifications.Enabled = false

				return c
			}(),
		},
		{
			Name: "bare minutes on the command line",
			Args: []string{"--duration", "10"},
			Want: func() *config.Config {
				c := defaultConfig(configPath)
				c.Meditation.Duration = 10 * time.Minute
				c.Meditation.Sound = "rain"

				return c
			}(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg, err := config.New(
				config.WithViperConfig(configPath),
				config.WithCLIConfig(cliContext(t, tc.Args)),
			)
			require.NoError(t, err)

			assert.Equal(t, tc.Want, cfg)
		})
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		Want   error
		Name   string
		Config string
		Args   []string
	}{
		{
			Name:   "zero duration",
			Config: "meditation:\n  duration: 0s\n",
			Want:   config.ErrInvalidDuration,
		},
		{
			Name: "duration over the limit",
			Args: []string{"--duration", "13h"},
			Want: config.ErrInvalidDuration,
		},
		{
			Name:   "unknown driver",
			Config: "storage:\n  driver: postgres\n",
			Want:   config.ErrUnknownDriver,
		},
		{
			Name:   "unknown track",
			Config: "meditation:\n  sound: whale song\n",
			Want:   sound.ErrUnknownTrack,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := writeConfig(t, tc.Config)

			_, err := config.New(
				config.WithViperConfig(configPath),
				config.WithCLIConfig(cliContext(t, tc.Args)),
			)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.Want), err)
			assert.True(t, errors.Is(err, config.ErrConfigValidation), err)
		})
	}
}

func TestInvalidCLIDuration(t *testing.T) {
	configPath := writeConfig(t, "")

	_, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(cliContext(t, []string{"--duration", "soon"})),
	)

	assert.Error(t, err)
}

func TestPromptSkippedWhenConfigExists(t *testing.T) {
	configPath := writeConfig(t, "log:\n  level: warn\n")

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
}
