package app

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
	"github.com/Shrinivasofficial/evening-stillness-reflections/stats"
	"github.com/Shrinivasofficial/evening-stillness-reflections/store"
)

// goalProgress computes the progress of every goal at now.
func goalProgress(db store.DB, now time.Time) ([]stats.GoalProgress, error) {
	goals, err := db.GetGoals()
	if err != nil {
		return nil, err
	}

	// a week may start in the previous month
	from := timeutil.WindowFor(timeutil.Weekly, now).Start
	if m := timeutil.WindowFor(timeutil.Monthly, now).Start; m.Before(from) {
		from = m
	}

	logs, err := db.GetMeditationLogs(from, timeutil.Day{})
	if err != nil {
		return nil, err
	}

	progress := make([]stats.GoalProgress, 0, len(goals))

	for _, g := range goals {
		progress = append(
			progress,
			stats.ComputeGoalProgress(g, logs, now),
		)
	}

	return progress, nil
}

// goalsAction lists the goals with their progress in the current period.
func goalsAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	progress, err := goalProgress(e.db, e.now)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(e, progress)
	}

	stats.PrintGoals(e.out, progress)

	return nil
}

// addGoal validates and stores a new goal.
func addGoal(db store.DB, kind string, target int) (*models.Goal, error) {
	g := &models.Goal{
		Kind:   models.GoalKind(kind),
		Target: target,
	}

	if k, err := timeutil.ParseGranularity(strings.ToLower(strings.TrimSpace(kind))); err == nil {
		g.Kind = k
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	if err := db.SaveGoal(g); err != nil {
		return nil, err
	}

	return g, nil
}

func goalsAddAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	g, err := addGoal(e.db, ctx.String("kind"), ctx.Int("target"))
	if err != nil {
		return err
	}

	report.Saved(string(g.Kind) + " goal " + g.ID)

	return nil
}

func goalsDeleteAction(ctx *cli.Context) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return errMissingIDs
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	for _, id := range ids {
		if err := e.db.DeleteGoal(id); err != nil {
			return err
		}
	}

	report.Deleted(len(ids), "goal")

	return nil
}
