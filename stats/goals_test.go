package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

func TestComputeGoalProgress(t *testing.T) {
	// Sunday, June 15 2025
	now := time.Date(2025, time.June, 15, 21, 30, 0, 0, time.Local)
	sunday := timeutil.DayOf(now)

	logs := []*models.MeditationLog{
		{Date: sunday, Duration: 590},             // 10 min
		{Date: sunday.AddDays(-6), Duration: 270}, // monday, 5 min (4.5 rounds up)
		{Date: sunday.AddDays(-7), Duration: 3000},
		{Date: timeutil.NewDay(2025, time.June, 1), Duration: 1200},
		{Date: timeutil.NewDay(2025, time.May, 31), Duration: 1200},
	}

	testCases := []struct {
		name          string
		goal          *models.Goal
		wantStart     timeutil.Day
		wantEnd       timeutil.Day
		wantCurrent   int
		wantPercent   float64
		wantCompleted bool
	}{
		{
			name:        "daily",
			goal:        &models.Goal{Kind: timeutil.Daily, Target: 20},
			wantStart:   sunday,
			wantEnd:     sunday.AddDays(1),
			wantCurrent: 10,
			wantPercent: 50,
		},
		{
			name:          "weekly from a sunday starts on the previous monday",
			goal:          &models.Goal{Kind: timeutil.Weekly, Target: 15},
			wantStart:     timeutil.NewDay(2025, time.June, 9),
			wantEnd:       timeutil.NewDay(2025, time.June, 16),
			wantCurrent:   15,
			wantPercent:   100,
			wantCompleted: true,
		},
		{
			name:          "monthly is capped at 100 percent",
			goal:          &models.Goal{Kind: timeutil.Monthly, Target: 30},
			wantStart:     timeutil.NewDay(2025, time.June, 1),
			wantEnd:       timeutil.NewDay(2025, time.July, 1),
			wantCurrent:   85,
			wantPercent:   100,
			wantCompleted: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := ComputeGoalProgress(tc.goal, logs, now)

			assert.Equal(t, tc.wantStart, p.PeriodStart)
			assert.Equal(t, tc.wantEnd, p.PeriodEnd)
			assert.Equal(t, tc.wantCurrent, p.Current)
			assert.InDelta(t, tc.wantPercent, p.Percent, 0.001)
			assert.Equal(t, tc.wantCompleted, p.Completed)
		})
	}
}

func TestComputeGoalProgressNoLogs(t *testing.T) {
	p := ComputeGoalProgress(
		&models.Goal{Kind: timeutil.Weekly, Target: 60},
		nil,
		time.Now(),
	)

	assert.Zero(t, p.Current)
	assert.Zero(t, p.Percent)
	assert.False(t, p.Completed)
}
