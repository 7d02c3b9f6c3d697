// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	HoursInADay     = 24
	secondsInAnHour = 3600
	minutesInAnHour = 60
	daysInAWeek     = 7
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	return val / minutesInAnHour, val % minutesInAnHour
}

// FormatSeconds renders a duration in seconds as "1h 5m", "12m 30s" or "45s".
func FormatSeconds(seconds int) string {
	hours := seconds / secondsInAnHour
	mins := (seconds % secondsInAnHour) / minutesInAnHour
	secs := seconds % minutesInAnHour

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case mins > 0 && secs > 0:
		return fmt.Sprintf("%dm %ds", mins, secs)
	case mins > 0:
		return fmt.Sprintf("%dm", mins)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodRange returns the first and last day covered by the specified
// period relative to now. The all-time period starts at the zero Day.
func PeriodRange(period Period, now time.Time) (start, end Day) {
	today := DayOf(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodAllTime:
		return Day{}, today
	case PeriodYesterday:
		yesterday := today.AddDays(Range[period])
		return yesterday, yesterday
	default:
		return today.AddDays(Range[period]), today
	}
}

// FromStr parses a human readable date such as "yesterday", "3 days ago" or
// "2025-03-01" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errUnparsableDate.Fmt(s)
	}

	return dt.Time, nil
}
