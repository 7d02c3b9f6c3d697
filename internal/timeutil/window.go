package timeutil

import "time"

// Granularity is the size of a date bucket.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Granularities lists the supported bucket sizes.
var Granularities = []Granularity{Daily, Weekly, Monthly}

// ParseGranularity validates a granularity name.
func ParseGranularity(s string) (Granularity, error) {
	for _, g := range Granularities {
		if string(g) == s {
			return g, nil
		}
	}

	return "", errUnknownGranularity.Fmt(s)
}

// Window is a half-open range of calendar days [Start, End).
type Window struct {
	Start Day
	End   Day
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d Day) bool {
	return !d.Before(w.Start) && d.Before(w.End)
}

// Days returns the number of days covered by the window.
func (w Window) Days() int {
	return w.End.Sub(w.Start)
}

// BucketStart returns the first day of the bucket of size g that contains
// d. Weeks start on Monday.
func BucketStart(d Day, g Granularity) Day {
	switch g {
	case Weekly:
		offset := (int(d.Weekday()) + daysInAWeek - int(time.Monday)) % daysInAWeek
		return d.AddDays(-offset)
	case Monthly:
		return NewDay(d.Year(), d.Month(), 1)
	default:
		return d
	}
}

// WindowOf returns the bucket of size g that contains d.
func WindowOf(g Granularity, d Day) Window {
	start := BucketStart(d, g)

	switch g {
	case Weekly:
		return Window{Start: start, End: start.AddDays(daysInAWeek)}
	case Monthly:
		return Window{Start: start, End: NewDay(start.Year(), start.Month()+1, 1)}
	default:
		return Window{Start: start, End: start.AddDays(1)}
	}
}

// WindowFor returns the bucket of size g that contains now.
func WindowFor(g Granularity, now time.Time) Window {
	return WindowOf(g, DayOf(now))
}

// Trailing returns the window of n days ending with (and including) d.
func Trailing(d Day, n int) Window {
	return Window{Start: d.AddDays(1 - n), End: d.AddDays(1)}
}
