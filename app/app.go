// Package app defines the still command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/config"
)

// Get retrieves the still app instance.
func Get() *cli.App {
	stillApp := &cli.App{
		Name: "still",
		Usage: `
		still is an evening companion for the command-line. Reflect on your day
		with three short questions and a mood rating, then settle into a timed
		meditation with ambient sound. Streaks, goals and weekly summaries
		help the habit stick.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "meditate",
				Aliases: []string{"m"},
				Usage:   "Start a meditation session (the default command)",
				Flags:   timerFlags,
				Action:  meditateAction,
			},
			{
				Name:    "reflect",
				Aliases: []string{"r"},
				Usage:   "Write the evening reflection for a day",
				Flags: []cli.Flag{
					dateFlag,
					moodFlag,
					wellFlag,
					shortFlag,
					againFlag,
					tagFlag,
				},
				Action: reflectAction,
			},
			{
				Name:   "reflections",
				Usage:  "List the reflections in a period",
				Flags:  []cli.Flag{periodFlag, jsonFlag},
				Action: reflectionsAction,
			},
			{
				Name:   "week",
				Usage:  "Summarise the past week: mood trend, top tags and streak",
				Flags:  []cli.Flag{plainFlag, jsonFlag},
				Action: weekAction,
			},
			{
				Name:   "delete-reflection",
				Usage:  "Delete the reflection of a day",
				Flags:  []cli.Flag{dateFlag, yesFlag},
				Action: deleteReflectionAction,
			},
			{
				Name:  "add",
				Usage: "Log a meditation session that was not timed with still",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "duration",
						Aliases:  []string{"d"},
						Usage:    "Session length as a duration (e.g. 90s, 10m) or bare minutes",
						Required: true,
					},
					dateFlag,
					musicFlag,
				},
				Action: addAction,
			},
			{
				Name:   "logs",
				Usage:  "List the meditation sessions in a period",
				Flags:  []cli.Flag{periodFlag, jsonFlag},
				Action: logsAction,
			},
			{
				Name:      "delete-log",
				Usage:     "Delete one or more meditation sessions by ID",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteLogAction,
			},
			{
				Name:   "stats",
				Usage:  "Show meditation statistics, streak and achievement level",
				Flags:  []cli.Flag{plainFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "goals",
				Usage:  "List meditation goals and their progress",
				Flags:  []cli.Flag{jsonFlag},
				Action: goalsAction,
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Set a daily, weekly or monthly target in minutes",
						Flags:  []cli.Flag{goalKindFlag, goalTargetFlag},
						Action: goalsAddAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete one or more goals by ID",
						ArgsUsage: "<id>...",
						Action:    goalsDeleteAction,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export all reflections, sessions and goals as JSON or YAML",
				Flags:  []cli.Flag{formatFlag, outputFlag},
				Action: exportAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append([]cli.Flag{noColorFlag}, timerFlags...),
		Action: meditateAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return stillApp
}
