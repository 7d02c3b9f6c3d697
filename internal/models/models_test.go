package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

func TestReflectionValidate(t *testing.T) {
	day := timeutil.NewDay(2025, time.April, 2)

	testCases := []struct {
		name    string
		r       Reflection
		wantErr error
	}{
		{
			name: "valid",
			r:    Reflection{Date: day, Mood: 3},
		},
		{
			name:    "mood too low",
			r:       Reflection{Date: day, Mood: 0},
			wantErr: errInvalidMood,
		},
		{
			name:    "mood too high",
			r:       Reflection{Date: day, Mood: 6},
			wantErr: errInvalidMood,
		},
		{
			name:    "missing date",
			r:       Reflection{Mood: 4},
			wantErr: errMissingDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.r.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestReflectionNormalise(t *testing.T) {
	r := Reflection{
		Date:  timeutil.NewDay(2025, time.April, 2),
		Mood:  4,
		Well:  "  long walk ",
		Tags:  []string{" calm", "work", "", "calm", "family "},
		Again: "\tread\n",
	}

	require.NoError(t, r.Validate())

	assert.Equal(t, "long walk", r.Well)
	assert.Equal(t, "read", r.Again)
	assert.Equal(t, []string{"calm", "work", "family"}, r.Tags)
	assert.Equal(t, "😊 Great", r.MoodLabel())
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags("  "))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a, b,,a"))
}

func TestMeditationLogMinutes(t *testing.T) {
	assert.Equal(t, 5, (&MeditationLog{Duration: 300}).Minutes())
	assert.Equal(t, 2, (&MeditationLog{Duration: 90}).Minutes())
	assert.Equal(t, 0, (&MeditationLog{Duration: 29}).Minutes())
}

func TestMeditationLogValidate(t *testing.T) {
	m := MeditationLog{Date: timeutil.NewDay(2025, time.April, 2)}

	assert.ErrorIs(t, m.Validate(), errInvalidDuration)

	m.Duration = 60
	assert.NoError(t, m.Validate())
}

func TestGoalValidate(t *testing.T) {
	assert.NoError(t, (&Goal{Kind: timeutil.Weekly, Target: 60}).Validate())
	assert.ErrorIs(t, (&Goal{Kind: "yearly", Target: 60}).Validate(), errInvalidGoalKind)
	assert.ErrorIs(t, (&Goal{Kind: timeutil.Daily}).Validate(), errInvalidGoalTarget)
}
