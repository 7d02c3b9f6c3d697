package timeutil

import (
	"slices"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

const secondsInADay = 86400

// Day is a calendar date without a time of day or location. The zero value
// represents an unset date.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay returns the calendar date for the given year, month, and day,
// normalising out-of-range values the way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return Day{t.Year(), t.Month(), t.Day()}
}

// DayOf returns the calendar date of t in t's location. Time of day is
// discarded.
func DayOf(t time.Time) Day {
	return Day{t.Year(), t.Month(), t.Day()}
}

// Today returns the current calendar date in the local time zone.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a date in the YYYY-MM-DD format.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, errInvalidDay.Fmt(s)
	}

	return DayOf(t), nil
}

// ParseDayInput accepts a strict YYYY-MM-DD date or a human readable one
// such as "yesterday" or "3 days ago".
func ParseDayInput(s string, now time.Time) (Day, error) {
	if d, err := ParseDay(s); err == nil {
		return d, nil
	}

	t, err := FromStr(s, now)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

func (d Day) Year() int { return d.year }

func (d Day) Month() time.Month { return d.month }

func (d Day) Day() int { return d.day }

// IsZero reports whether d is the unset date.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns midnight at the start of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Number returns the number of days between the Unix epoch and d.
func (d Day) Number() int {
	return int(d.Time(time.UTC).Unix() / secondsInADay)
}

// AddDays returns the date n days after d (or before, if n is negative).
func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.day+n)
}

// Sub returns the number of days from o to d.
func (d Day) Sub(o Day) int {
	return d.Number() - o.Number()
}

func (d Day) Before(o Day) bool { return d.Number() < o.Number() }

func (d Day) After(o Day) bool { return d.Number() > o.Number() }

// Compare returns -1, 0, or +1 depending on whether d is before, equal to,
// or after o.
func (d Day) Compare(o Day) int {
	switch {
	case d.Before(o):
		return -1
	case d.After(o):
		return 1
	default:
		return 0
	}
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Time(time.UTC).Format(dayLayout)
}

// Format formats d with a time layout.
func (d Day) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

// Key returns a database key for d that sorts chronologically.
func (d Day) Key() []byte {
	return []byte(d.String())
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Day{}
		return nil
	}

	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Distinct returns the distinct days in days, most recent first.
func Distinct(days []Day) []Day {
	seen := make(map[Day]struct{}, len(days))
	out := make([]Day, 0, len(days))

	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}

		seen[d] = struct{}{}

		out = append(out, d)
	}

	slices.SortFunc(out, func(a, b Day) int {
		return b.Compare(a)
	})

	return out
}
