package stats

import (
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

// Level is an achievement tier earned by completing sessions.
type Level struct {
	Name        string `json:"name"         yaml:"name"`
	Icon        string `json:"icon"         yaml:"icon"`
	MinSessions int    `json:"min_sessions" yaml:"min_sessions"`
}

// Levels are ordered from the highest tier to the lowest.
var Levels = []Level{
	{Name: "Master", Icon: "👑", MinSessions: 100},
	{Name: "Advanced", Icon: "🌟", MinSessions: 50},
	{Name: "Intermediate", Icon: "⭐", MinSessions: 20},
	{Name: "Beginner", Icon: "🌱", MinSessions: 10},
	{Name: "Newcomer", Icon: "🌿", MinSessions: 0},
}

// AchievementLevel returns the tier reached after the given number of
// sessions.
func AchievementLevel(sessions int) Level {
	for _, l := range Levels {
		if sessions >= l.MinSessions {
			return l
		}
	}

	return Levels[len(Levels)-1]
}

// SessionsToMaster returns the number of sessions left before reaching the
// top tier.
func SessionsToMaster(sessions int) int {
	return max(Levels[0].MinSessions-sessions, 0)
}

// Meditation summarises a set of meditation logs. Durations are in
// seconds.
type Meditation struct {
	Level             Level  `json:"level"               yaml:"level"`
	Streak            Streak `json:"streak"              yaml:"streak"`
	TotalSessions     int    `json:"total_sessions"      yaml:"total_sessions"`
	TotalDuration     int    `json:"total_duration"      yaml:"total_duration"`
	AverageDuration   int    `json:"average_duration"    yaml:"average_duration"`
	LongestSession    int    `json:"longest_session"     yaml:"longest_session"`
	ShortestSession   int    `json:"shortest_session"    yaml:"shortest_session"`
	SessionsLastWeek  int    `json:"sessions_last_week"  yaml:"sessions_last_week"`
	DurationLastWeek  int    `json:"duration_last_week"  yaml:"duration_last_week"`
	SessionsLastMonth int    `json:"sessions_last_month" yaml:"sessions_last_month"`
	DurationLastMonth int    `json:"duration_last_month" yaml:"duration_last_month"`
	SessionsToMaster  int    `json:"sessions_to_master"  yaml:"sessions_to_master"`
}

// ComputeMeditation derives totals, rolling 7 and 30 day figures, the
// streak and the achievement level from logs.
func ComputeMeditation(
	logs []*models.MeditationLog,
	today timeutil.Day,
) Meditation {
	m := Meditation{
		TotalSessions: len(logs),
		Streak:        ComputeStreaks(models.AsDated(logs), today),
	}

	m.Level = AchievementLevel(m.TotalSessions)
	m.SessionsToMaster = SessionsToMaster(m.TotalSessions)

	if len(logs) == 0 {
		return m
	}

	week := timeutil.Trailing(today, 7)
	month := timeutil.Trailing(today, 30)

	m.ShortestSession = logs[0].Duration

	for _, l := range logs {
		m.TotalDuration += l.Duration
		m.LongestSession = max(m.LongestSession, l.Duration)
		m.ShortestSession = min(m.ShortestSession, l.Duration)

		if week.Contains(l.Date) {
			m.SessionsLastWeek++
			m.DurationLastWeek += l.Duration
		}

		if month.Contains(l.Date) {
			m.SessionsLastMonth++
			m.DurationLastMonth += l.Duration
		}
	}

	m.AverageDuration = timeutil.Round(
		float64(m.TotalDuration) / float64(m.TotalSessions),
	)

	return m
}
