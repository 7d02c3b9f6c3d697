package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
)

const asciiLogo = `
███████╗████████╗██╗██╗     ██╗
██╔════╝╚══██╔══╝██║██║     ██║
███████╗   ██║   ██║██║     ██║
╚════██║   ██║   ██║██║     ██║
███████║   ██║   ██║███████╗███████╗
╚══════╝   ╚═╝   ╚═╝╚══════╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Sound    string
	Duration int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func soundOptions() []huh.Option[string] {
	opts := []huh.Option[string]{
		huh.NewOption("No ambient sound", sound.Off).Selected(true),
	}

	for _, t := range sound.Catalog {
		opts = append(opts, huh.NewOption(t.Name, t.File))
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to set up still for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'still edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Meditation length").
				Options(
					huh.NewOption("3 minutes", 3),
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
				).
				Value(&opts.Duration),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Ambient sound").
				Options(soundOptions()...).
				Value(&opts.Sound),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	if opts.Duration > 0 {
		c.Meditation.Duration = time.Duration(opts.Duration) * time.Minute
	}

	if opts.Sound != sound.Off {
		c.Meditation.Sound = opts.Sound
	}
}
