package stats

import (
	"time"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

// GoalProgress is the state of a goal within its current period.
type GoalProgress struct {
	Goal        *models.Goal `json:"goal"         yaml:"goal"`
	PeriodStart timeutil.Day `json:"period_start" yaml:"period_start"`
	// PeriodEnd is exclusive.
	PeriodEnd timeutil.Day `json:"period_end" yaml:"period_end"`
	// Current is in minutes.
	Current   int     `json:"current"   yaml:"current"`
	Percent   float64 `json:"percent"   yaml:"percent"`
	Completed bool    `json:"completed" yaml:"completed"`
}

// ComputeGoalProgress totals the minutes of the logs that fall in the
// goal's period containing now. Each log is rounded to the nearest minute
// before summing.
func ComputeGoalProgress(
	goal *models.Goal,
	logs []*models.MeditationLog,
	now time.Time,
) GoalProgress {
	w := timeutil.WindowFor(goal.Kind, now)

	p := GoalProgress{
		Goal:        goal,
		PeriodStart: w.Start,
		PeriodEnd:   w.End,
	}

	for _, l := range InWindow(logs, w) {
		p.Current += l.Minutes()
	}

	p.Completed = p.Current >= goal.Target

	if goal.Target > 0 {
		p.Percent = min(float64(p.Current)/float64(goal.Target)*100, 100)
	}

	return p
}

// InWindow returns the records whose day falls inside w.
func InWindow[T models.Dated](records []T, w timeutil.Window) []T {
	var out []T

	for _, r := range records {
		if w.Contains(r.Day()) {
			out = append(out, r)
		}
	}

	return out
}
