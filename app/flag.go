package app

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

func periods() string {
	names := make([]string, len(timeutil.PeriodCollection))
	for i, p := range timeutil.PeriodCollection {
		names[i] = string(p)
	}

	return strings.Join(names, ", ")
}

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Meditation length as a duration (e.g. 90s, 10m) or bare minutes (default: 5)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Ambient sound to play during a session. Options: rain, ocean_waves, forest_birds,\n\t\t\t\ttibetan_bowls, or the path to an audio file. Disable sound by setting to 'off'",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a session is completed",
	}

	noChimeFlag = &cli.BoolFlag{
		Name:  "no-chime",
		Usage: "Do not sound a chime when a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}

	startFlag = &cli.BoolFlag{
		Name:  "start",
		Usage: "Start the countdown immediately",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "The day of the record (e.g. 2025-03-04, 'yesterday', '3 days ago'). Defaults to today",
	}

	moodFlag = &cli.IntFlag{
		Name:    "mood",
		Aliases: []string{"m"},
		Usage:   "Mood rating from 1 (struggling) to 5 (amazing). Skips the interactive form",
	}

	wellFlag = &cli.StringFlag{
		Name:  "well",
		Usage: "What went well today",
	}

	shortFlag = &cli.StringFlag{
		Name:  "short",
		Usage: "Where you fell short",
	}

	againFlag = &cli.StringFlag{
		Name:  "again",
		Usage: "What you would do again",
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Comma-delimited tags",
	}

	musicFlag = &cli.StringFlag{
		Name:  "music",
		Usage: "Comma-delimited ambient tracks used during the session",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period. Options: " + periods(),
		Value:   string(timeutil.Period7Days),
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Draw charts with plain terminal bars",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	goalKindFlag = &cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Usage:    "Goal period: daily, weekly or monthly",
		Required: true,
	}

	goalTargetFlag = &cli.IntFlag{
		Name:     "target",
		Usage:    "Target number of meditation minutes per period",
		Required: true,
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: json or yaml. Inferred from --output when omitted",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to a file instead of standard output",
	}
)

// timerFlags configure a meditation session.
var timerFlags = []cli.Flag{
	durationFlag,
	soundFlag,
	disableNotificationFlag,
	noChimeFlag,
	sessionCmdFlag,
	startFlag,
}
