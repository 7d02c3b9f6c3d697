package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/config"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/store"
)

// wednesday evening
var now = time.Date(2025, time.March, 5, 21, 0, 0, 0, time.Local)

func newDB(t *testing.T) store.DB {
	t.Helper()

	db, err := store.NewMemorySQLite()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

type fakeNotifier struct {
	msgs []string
}

func (f *fakeNotifier) Notify(_, msg string) error {
	f.msgs = append(f.msgs, msg)
	return nil
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, timeutil.NewDay(2025, time.March, 5), d)

	d, err = parseDate("2025-02-28", now)
	require.NoError(t, err)
	assert.Equal(t, timeutil.NewDay(2025, time.February, 28), d)
}

func TestParsePeriod(t *testing.T) {
	p, err := parsePeriod("30days")
	require.NoError(t, err)
	assert.Equal(t, timeutil.Period30Days, p)

	_, err = parsePeriod("fortnight")
	assert.ErrorIs(t, err, errUnknownPeriod)
}

func TestSaveReflectionUpsertsByDate(t *testing.T) {
	db := newDB(t)
	day := timeutil.DayOf(now)

	first, err := saveReflection(db, day, reflectInput{
		Mood: 2,
		Well: " Went for a walk ",
		Tags: "walk, calm, walk",
	})
	require.NoError(t, err)
	assert.Equal(t, "Went for a walk", first.Well)
	assert.Equal(t, []string{"walk", "calm"}, first.Tags)

	second, err := saveReflection(db, day, reflectInput{Mood: 5})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := db.GetReflections(timeutil.Day{}, timeutil.Day{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].Mood)

	_, err = saveReflection(db, day, reflectInput{Mood: 6})
	assert.ErrorIs(t, err, models.ErrInvalidMood)
}

func TestAddLog(t *testing.T) {
	db := newDB(t)
	day := timeutil.DayOf(now)

	l, err := addLog(db, day, "10", "Rain Sounds, Ocean Waves")
	require.NoError(t, err)
	assert.Equal(t, 600, l.Duration)
	assert.Equal(t, []string{"Rain Sounds", "Ocean Waves"}, l.Music)
	assert.NotEmpty(t, l.ID)

	l, err = addLog(db, day, "90s", "")
	require.NoError(t, err)
	assert.Equal(t, 90, l.Duration)
	assert.Empty(t, l.Music)

	_, err = addLog(db, day, "soon", "")
	assert.ErrorIs(t, err, errInvalidLogDuration)

	_, err = addLog(db, day, "0", "")
	assert.ErrorIs(t, err, models.ErrInvalidDuration)

	logs, err := db.GetMeditationLogs(timeutil.Day{}, timeutil.Day{})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestGoalProgress(t *testing.T) {
	db := newDB(t)

	g, err := addGoal(db, " Weekly ", 20)
	require.NoError(t, err)
	assert.Equal(t, timeutil.Weekly, g.Kind)

	_, err = addGoal(db, "yearly", 20)
	assert.ErrorIs(t, err, models.ErrInvalidGoalKind)

	_, err = addGoal(db, "daily", 0)
	assert.ErrorIs(t, err, models.ErrInvalidGoalTarget)

	// Monday of this week, last Sunday and today
	for _, d := range []timeutil.Day{
		timeutil.NewDay(2025, time.March, 3),
		timeutil.NewDay(2025, time.March, 2),
		timeutil.NewDay(2025, time.March, 5),
	} {
		_, err = addLog(db, d, "10m", "")
		require.NoError(t, err)
	}

	progress, err := goalProgress(db, now)
	require.NoError(t, err)
	require.Len(t, progress, 1)

	assert.Equal(t, 20, progress[0].Current)
	assert.True(t, progress[0].Completed)
	assert.Equal(t, timeutil.NewDay(2025, time.March, 3), progress[0].PeriodStart)
}

func TestGoalProgressAcrossMonths(t *testing.T) {
	db := newDB(t)

	_, err := addGoal(db, "weekly", 60)
	require.NoError(t, err)

	// the week of Saturday 1 March started on Monday 24 February
	_, err = addLog(db, timeutil.NewDay(2025, time.February, 24), "15m", "")
	require.NoError(t, err)

	saturday := time.Date(2025, time.March, 1, 20, 0, 0, 0, time.Local)

	progress, err := goalProgress(db, saturday)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 15, progress[0].Current)
	assert.False(t, progress[0].Completed)
}

func TestCelebrateOncePerDay(t *testing.T) {
	db := newDB(t)
	n := &fakeNotifier{}
	today := timeutil.DayOf(now)

	for i := range 5 {
		_, err := addLog(db, today.AddDays(-i), "5m", "")
		require.NoError(t, err)
	}

	logs, err := db.GetMeditationLogs(timeutil.Day{}, timeutil.Day{})
	require.NoError(t, err)

	records := models.AsDated(logs)

	require.NoError(t, celebrate(db, n, kindMeditation, records, today))
	require.NoError(t, celebrate(db, n, kindMeditation, records, today))

	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "5-Day Streak")

	require.NoError(t, celebrate(db, n, kindReflection, nil, today))
	assert.Len(t, n.msgs, 1, "no streak, nothing to celebrate")
}

func TestPrintLogs(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	logs := []*models.MeditationLog{
		{
			ID:       "m-1",
			Date:     timeutil.NewDay(2025, time.March, 5),
			Duration: 600,
			Music:    []string{"Rain Sounds"},
		},
		{
			ID:       "m-2",
			Date:     timeutil.NewDay(2025, time.March, 4),
			Duration: 330,
		},
	}

	var buf bytes.Buffer

	printLogs(&buf, logs)

	out := buf.String()
	assert.Contains(t, out, "Wed, Mar 05 2025")
	assert.Contains(t, out, "Rain Sounds")
	assert.Contains(t, out, "15m 30s across 2 sessions")
}

func TestPrintReflections(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	printReflections(&buf, []*models.Reflection{
		{
			Date: timeutil.NewDay(2025, time.March, 5),
			Mood: 4,
			Well: strings.Repeat("calm ", 20),
			Tags: []string{"walk", "calm"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "😊 Great")
	assert.Contains(t, out, "walk · calm")
	assert.Contains(t, out, "…")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b", truncate(" a\n b ", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestConfirm(t *testing.T) {
	stdin, stdout := config.Stdin, config.Stdout

	t.Cleanup(func() {
		config.Stdin = stdin
		config.Stdout = stdout
	})

	config.Stdout = &bytes.Buffer{}

	config.Stdin = strings.NewReader("\n")
	assert.NoError(t, confirm("delete?"))

	config.Stdin = strings.NewReader("no\n")
	assert.ErrorIs(t, confirm("delete?"), errAborted)

	config.Stdin = strings.NewReader("")
	assert.ErrorIs(t, confirm("delete?"), errAborted, "EOF cancels")
}

func TestAppCommands(t *testing.T) {
	a := Get()

	var names []string
	for _, c := range a.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{
		"meditate",
		"reflect",
		"reflections",
		"week",
		"delete-reflection",
		"add",
		"logs",
		"delete-log",
		"stats",
		"goals",
		"export",
		"edit-config",
	}, names)
}
