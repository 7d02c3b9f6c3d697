package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

var today = timeutil.NewDay(2025, time.June, 12)

// logsOn returns one meditation log for each day offset from today.
func logsOn(offsets ...int) []models.Dated {
	records := make([]models.Dated, len(offsets))

	for i, o := range offsets {
		records[i] = &models.MeditationLog{Date: today.AddDays(o), Duration: 60}
	}

	return records
}

func TestComputeStreaks(t *testing.T) {
	testCases := []struct {
		name    string
		records []models.Dated
		want    Streak
	}{
		{
			name: "no records",
			want: Streak{0, 0},
		},
		{
			name:    "only today",
			records: logsOn(0),
			want:    Streak{1, 1},
		},
		{
			name:    "only yesterday",
			records: logsOn(-1),
			want:    Streak{0, 1},
		},
		{
			name:    "gap of two days breaks the streak",
			records: logsOn(0, -1, -3),
			want:    Streak{2, 2},
		},
		{
			name:    "duplicate days count once",
			records: logsOn(0, 0, -1),
			want:    Streak{2, 2},
		},
		{
			name:    "seven consecutive days ending today",
			records: logsOn(0, -1, -2, -3, -4, -5, -6),
			want:    Streak{7, 7},
		},
		{
			name:    "longest run in the past",
			records: logsOn(0, -10, -9, -8),
			want:    Streak{1, 3},
		},
		{
			name:    "records without a date are skipped",
			records: []models.Dated{&models.MeditationLog{Duration: 60}},
			want:    Streak{0, 0},
		},
		{
			name:    "unsorted input",
			records: logsOn(-8, 0, -9, -1, -10),
			want:    Streak{2, 3},
		},
		{
			name:    "final run is counted",
			records: logsOn(-20, -21, -22, -23, -5),
			want:    Streak{0, 4},
		},
		{
			name:    "future days do not extend the current streak",
			records: logsOn(2, 0, -1),
			want:    Streak{2, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeStreaks(tc.records, today))
		})
	}
}

func TestComputeStreaksBeyondAYear(t *testing.T) {
	offsets := make([]int, 400)
	for i := range offsets {
		offsets[i] = -i
	}

	assert.Equal(t, Streak{400, 400}, ComputeStreaks(logsOn(offsets...), today))
}

func TestComputeStreaksReflections(t *testing.T) {
	reflections := []*models.Reflection{
		{Date: today, Mood: 3},
		{Date: today.AddDays(-1), Mood: 4},
	}

	assert.Equal(t, Streak{2, 2}, ComputeStreaks(models.AsDated(reflections), today))
}

func TestMilestone(t *testing.T) {
	for _, n := range []int{5, 7, 10, 15, 30} {
		got, ok := Milestone(n)
		assert.True(t, ok, n)
		assert.Equal(t, n, got)
	}

	for _, n := range []int{0, 1, 6, 8, 31, 365} {
		_, ok := Milestone(n)
		assert.False(t, ok, n)
	}
}

func TestMilestoneMessage(t *testing.T) {
	assert.Contains(t, MilestoneMessage("Meditation", 5), "beautiful habit")
	assert.Contains(t, MilestoneMessage("Meditation", 7), "One mindful week")
	assert.Contains(t, MilestoneMessage("Meditation", 10), "Double digits")
	assert.Equal(t, "🎉 15-Day Meditation Streak! You're on fire!", MilestoneMessage("Meditation", 15))
}

type memSettings map[string]string

func (m memSettings) GetSetting(key string) (string, error) {
	return m[key], nil
}

func (m memSettings) SetSetting(key, value string) error {
	m[key] = value
	return nil
}

func TestCelebrateMilestoneOnce(t *testing.T) {
	s := memSettings{}

	msg, ok, err := CelebrateMilestone(s, "Meditation", Streak{Current: 7, Longest: 7}, today)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, msg, "7-Day")

	_, ok, err = CelebrateMilestone(s, "Meditation", Streak{Current: 7, Longest: 7}, today)
	assert.NoError(t, err)
	assert.False(t, ok, "the same milestone is celebrated once per day")

	_, ok, err = CelebrateMilestone(s, "Reflection", Streak{Current: 7, Longest: 7}, today)
	assert.NoError(t, err)
	assert.True(t, ok, "each record kind is celebrated separately")

	_, ok, err = CelebrateMilestone(s, "Meditation", Streak{Current: 8, Longest: 8}, today.AddDays(1))
	assert.NoError(t, err)
	assert.False(t, ok)
}
