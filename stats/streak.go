// Package stats derives streaks, achievements, goal progress and weekly
// summaries from stored records
package stats

import (
	"fmt"
	"slices"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

// Milestones are the current streak lengths that earn a celebration.
var Milestones = []int{5, 7, 10, 15, 30}

// Streak holds the number of consecutive occupied days ending today and
// the longest such run on record.
type Streak struct {
	Current int `json:"current" yaml:"current"`
	Longest int `json:"longest" yaml:"longest"`
}

// ComputeStreaks derives the current and longest streak of days that have
// at least one record. Several records on the same day count once. Days
// after today are not part of the current streak. Records without a date
// are skipped.
func ComputeStreaks(records []models.Dated, today timeutil.Day) Streak {
	days := make([]timeutil.Day, 0, len(records))

	for i := range records {
		if d := records[i].Day(); !d.IsZero() {
			days = append(days, d)
		}
	}

	distinct := timeutil.Distinct(days)

	return Streak{
		Current: currentStreak(distinct, today),
		Longest: longestStreak(distinct),
	}
}

// currentStreak walks days (distinct, most recent first) backward from
// today.
func currentStreak(days []timeutil.Day, today timeutil.Day) int {
	i, found := slices.BinarySearchFunc(days, today, func(d, target timeutil.Day) int {
		return target.Compare(d)
	})
	if !found {
		return 0
	}

	streak := 1

	for ; i+1 < len(days); i++ {
		if days[i].Sub(days[i+1]) != 1 {
			break
		}

		streak++
	}

	return streak
}

// longestStreak finds the longest run of adjacent days in days (distinct,
// most recent first).
func longestStreak(days []timeutil.Day) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1

	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 1 {
			run++
		} else {
			run = 1
		}

		longest = max(longest, run)
	}

	return longest
}

// Milestone reports whether current is one of the celebrated streak
// lengths.
func Milestone(current int) (int, bool) {
	if slices.Contains(Milestones, current) {
		return current, true
	}

	return 0, false
}

// MilestoneMessage returns the celebration text for a streak milestone.
func MilestoneMessage(kind string, n int) string {
	switch n {
	case 5:
		return "🌟 5-Day Streak! You're building a beautiful habit!"
	case 7:
		return "✨ 7-Day Streak! One mindful week complete!"
	case 10:
		return "🏅 10-Day Streak! Double digits! Your dedication shines."
	default:
		return fmt.Sprintf("🎉 %d-Day %s Streak! You're on fire!", n, kind)
	}
}
