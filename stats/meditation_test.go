package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
)

func TestAchievementLevel(t *testing.T) {
	testCases := []struct {
		sessions int
		want     string
	}{
		{0, "Newcomer"},
		{9, "Newcomer"},
		{10, "Beginner"},
		{19, "Beginner"},
		{20, "Intermediate"},
		{50, "Advanced"},
		{99, "Advanced"},
		{100, "Master"},
		{250, "Master"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, AchievementLevel(tc.sessions).Name, tc.sessions)
	}

	assert.Equal(t, 90, SessionsToMaster(10))
	assert.Equal(t, 0, SessionsToMaster(120))
}

func TestComputeMeditationEmpty(t *testing.T) {
	m := ComputeMeditation(nil, today)

	want := Meditation{
		Level:            AchievementLevel(0),
		SessionsToMaster: 100,
	}

	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("ComputeMeditation() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeMeditation(t *testing.T) {
	logs := []*models.MeditationLog{
		{Date: today, Duration: 600},
		{Date: today, Duration: 300},
		{Date: today.AddDays(-1), Duration: 180},
		{Date: today.AddDays(-6), Duration: 900},
		{Date: today.AddDays(-7), Duration: 120},
		{Date: today.AddDays(-29), Duration: 60},
		{Date: today.AddDays(-30), Duration: 1200},
	}

	m := ComputeMeditation(logs, today)

	want := Meditation{
		Level:             AchievementLevel(7),
		Streak:            Streak{Current: 2, Longest: 2},
		TotalSessions:     7,
		TotalDuration:     3360,
		AverageDuration:   480,
		LongestSession:    1200,
		ShortestSession:   60,
		SessionsLastWeek:  4,
		DurationLastWeek:  1980,
		SessionsLastMonth: 6,
		DurationLastMonth: 2160,
		SessionsToMaster:  93,
	}

	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("ComputeMeditation() mismatch (-want +got):\n%s", diff)
	}
}
