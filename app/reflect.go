package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
	"github.com/Shrinivasofficial/evening-stillness-reflections/stats"
	"github.com/Shrinivasofficial/evening-stillness-reflections/store"
)

const defaultMood = 3

// reflectInput holds the answers to the evening questions.
type reflectInput struct {
	Well  string
	Short string
	Again string
	Tags  string
	Mood  int
}

// parseDate resolves a --date value. An empty value means today.
func parseDate(s string, now time.Time) (timeutil.Day, error) {
	if strings.TrimSpace(s) == "" {
		return timeutil.DayOf(now), nil
	}

	return timeutil.ParseDayInput(s, now)
}

// saveReflection validates the answers and stores them as the reflection
// for day, replacing any earlier one.
func saveReflection(
	db store.DB,
	day timeutil.Day,
	in reflectInput,
) (*models.Reflection, error) {
	r := &models.Reflection{
		Date:  day,
		Mood:  in.Mood,
		Well:  in.Well,
		Short: in.Short,
		Again: in.Again,
		Tags:  models.SplitTags(in.Tags),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := db.UpsertReflection(r); err != nil {
		return nil, err
	}

	return r, nil
}

func moodOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, models.MaxMood)

	for mood := models.MinMood; mood <= models.MaxMood; mood++ {
		opts = append(opts, huh.NewOption(models.MoodLabels[mood], mood))
	}

	return opts
}

// promptReflection asks the evening questions, starting from the answers
// already saved for the day.
func promptReflection(
	day timeutil.Day,
	existing *models.Reflection,
) (reflectInput, error) {
	in := reflectInput{Mood: defaultMood}

	if existing != nil {
		in = reflectInput{
			Well:  existing.Well,
			Short: existing.Short,
			Again: existing.Again,
			Tags:  strings.Join(existing.Tags, ", "),
			Mood:  existing.Mood,
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How are you feeling today?").
				Description(day.Format("Monday, January 2")).
				Options(moodOptions()...).
				Value(&in.Mood),
		),
		huh.NewGroup(
			huh.NewText().
				Title("What did I do well today?").
				Placeholder("Celebrate your wins, no matter how small...").
				Value(&in.Well),
			huh.NewText().
				Title("Where did I fall short?").
				Placeholder("Reflect with compassion, not judgment...").
				Value(&in.Short),
			huh.NewText().
				Title("What can I try again tomorrow?").
				Placeholder("Focus on growth and learning...").
				Value(&in.Again),
			huh.NewInput().
				Title("Tags (optional)").
				Placeholder("gratitude, family, work").
				Value(&in.Tags),
		),
	)

	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return in, errAborted
	}

	return in, err
}

// reflectAction records the evening reflection, interactively unless a
// mood is given on the command line.
func reflectAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	day, err := parseDate(ctx.String("date"), e.now)
	if err != nil {
		return err
	}

	in := reflectInput{
		Mood:  ctx.Int("mood"),
		Well:  ctx.String("well"),
		Short: ctx.String("short"),
		Again: ctx.String("again"),
		Tags:  ctx.String("tag"),
	}

	if !ctx.IsSet("mood") {
		existing, err := e.db.GetReflection(day)
		if err != nil && !errors.Is(err, store.ErrReflectionNotFound) {
			return err
		}

		in, err = promptReflection(day, existing)
		if err != nil {
			return err
		}
	}

	if _, err := saveReflection(e.db, day, in); err != nil {
		return err
	}

	report.Saved("reflection")

	reflections, err := e.db.GetReflections(timeutil.Day{}, e.today())
	if err != nil {
		return err
	}

	return celebrate(
		e.db,
		e.notifier,
		kindReflection,
		models.AsDated(reflections),
		e.today(),
	)
}

// parsePeriod validates a --period value.
func parsePeriod(s string) (timeutil.Period, error) {
	for _, p := range timeutil.PeriodCollection {
		if string(p) == s {
			return p, nil
		}
	}

	return "", errUnknownPeriod.Fmt(s, periods())
}

// reflectionsAction lists the reflections in a period.
func reflectionsAction(ctx *cli.Context) error {
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

	reflections, err := e.db.GetReflections(from, to)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(e, reflections)
	}

	printReflections(e.out, reflections)

	return nil
}

// weekAction prints the weekly summary.
func weekAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	reflections, err := e.db.GetReflections(timeutil.Day{}, e.today())
	if err != nil {
		return err
	}

	wk := stats.ComputeWeekly(reflections, e.today())

	if ctx.Bool("json") {
		return printJSON(e, wk)
	}

	stats.PrintWeekly(e.out, wk, ctx.Bool("plain"))

	return celebrate(
		e.db,
		e.notifier,
		kindReflection,
		models.AsDated(reflections),
		e.today(),
	)
}

// deleteReflectionAction removes the reflection of a day.
func deleteReflectionAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.close()

	day, err := parseDate(ctx.String("date"), e.now)
	if err != nil {
		return err
	}

	r, err := e.db.GetReflection(day)
	if err != nil {
		return err
	}

	printReflections(e.out, []*models.Reflection{r})

	if !ctx.Bool("yes") {
		err = confirm(fmt.Sprintf(
			"The reflection for %s will be deleted permanently. Press ENTER to proceed",
			day,
		))
		if err != nil {
			return err
		}
	}

	if err := e.db.DeleteReflection(day); err != nil {
		return err
	}

	report.Deleted(1, "reflection")

	return nil
}

func printJSON(e *env, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(e.out, string(b))

	return err
}
