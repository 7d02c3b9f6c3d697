package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/config"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
	"github.com/Shrinivasofficial/evening-stillness-reflections/stats"
	"github.com/Shrinivasofficial/evening-stillness-reflections/store"
)

// addLog records a session that was not timed by still.
func addLog(
	db store.DB,
	day timeutil.Day,
	duration, music string,
) (*models.MeditationLog, error) {
	dur, err := config.ParseDuration(duration)
	if err != nil {
		return nil, errInvalidLogDuration.Fmt(duration).Wrap(err)
	}

	l := &models.MeditationLog{
		Date:     day,
		Duration: int(dur / time.Second),
		Music:    models.SplitTags(music),
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := db.CreateMeditationLog(l); err != nil {
		return nil, err
	}

	return l, nil
}

// addAction handles the add command which logs a meditation session
// manually.
func addAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	day, err := parseDate(ctx.String("date"), e.now)
	if err != nil {
		return err
	}

	l, err := addLog(e.db, day, ctx.String("duration"), ctx.String("music"))
	if err != nil {
		return err
	}

	report.Saved(fmt.Sprintf(
		"%s session on %s",
		timeutil.FormatSeconds(l.Duration),
		l.Date,
	))

	logs, err := e.db.GetMeditationLogs(timeutil.Day{}, e.today())
	if err != nil {
		return err
	}

	return celebrate(e.db, e.notifier, kindMeditation, models.AsDated(logs), e.today())
}

// logsAction lists the meditation sessions in a period.
func logsAction(ctx *cli.Context) error {
	period, err := parsePeriod(ctx.String("period"))
	if err != nil {
		return err
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	from, to := timeutil.PeriodRange(period, e.now)

	logs, err := e.db.GetMeditationLogs(from, to)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(e, logs)
	}

	printLogs(e.out, logs)

	return nil
}

// deleteLogAction deletes the meditation logs named on the command line.
// It requests confirmation before proceeding.
func deleteLogAction(ctx *cli.Context) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return errMissingIDs
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	if !ctx.Bool("yes") {
		err = confirm(fmt.Sprintf(
			"%s will be deleted permanently. Press ENTER to proceed",
			strings.Join(ids, ", "),
		))
		if err != nil {
			return err
		}
	}

	if err := e.db.DeleteMeditationLogs(ids); err != nil {
		return err
	}

	report.Deleted(len(ids), "meditation log")

	return nil
}

// meditationReport is the JSON form of the stats command.
type meditationReport struct {
	Stats  stats.Meditation   `json:"stats"`
	Recent []stats.DayMinutes `json:"recent"`
}

// statsAction prints the meditation statistics.
func statsAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	logs, err := e.db.GetMeditationLogs(timeutil.Day{}, e.today())
	if err != nil {
		return err
	}

	m := stats.ComputeMeditation(logs, e.today())
	days := stats.DailyMinutes(logs, e.today(), stats.RecentDays)

	if ctx.Bool("json") {
		return printJSON(e, meditationReport{Stats: m, Recent: days})
	}

	stats.PrintMeditation(e.out, m, days, ctx.Bool("plain"))

	return celebrate(e.db, e.notifier, kindMeditation, models.AsDated(logs), e.today())
}
