// Package models defines the records persisted by still
package models

import (
	"slices"
	"strings"
	"time"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

const (
	MinMood = 1
	MaxMood = 5
)

// MoodLabels maps a mood rating to its display label.
var MoodLabels = map[int]string{
	1: "😔 Struggling",
	2: "😐 Okay",
	3: "🙂 Good",
	4: "😊 Great",
	5: "🌟 Amazing",
}

// Dated is any record that occupies a calendar day.
type Dated interface {
	Day() timeutil.Day
}

// Reflection is a daily evening journal entry. There is at most one
// reflection per calendar date.
type Reflection struct {
	Date      timeutil.Day `json:"date"       yaml:"date"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" yaml:"updated_at"`
	ID        string       `json:"id"         yaml:"id"`
	Well      string       `json:"well"       yaml:"well"`
	Short     string       `json:"short"      yaml:"short"`
	Again     string       `json:"again"      yaml:"again"`
	Tags      []string     `json:"tags"       yaml:"tags"`
	Mood      int          `json:"mood"       yaml:"mood"`
}

func (r *Reflection) Day() timeutil.Day {
	return r.Date
}

// Normalise trims the free text answers and cleans up the tags.
func (r *Reflection) Normalise() {
	r.Well = strings.TrimSpace(r.Well)
	r.Short = strings.TrimSpace(r.Short)
	r.Again = strings.TrimSpace(r.Again)
	r.Tags = NormaliseTags(r.Tags)
}

// Validate normalises the reflection and checks its fields.
func (r *Reflection) Validate() error {
	r.Normalise()

	if r.Date.IsZero() {
		return errMissingDate
	}

	if r.Mood < MinMood || r.Mood > MaxMood {
		return errInvalidMood.Fmt(r.Mood, MinMood, MaxMood)
	}

	return nil
}

// MoodLabel returns the display label for the reflection's mood.
func (r *Reflection) MoodLabel() string {
	return MoodLabels[r.Mood]
}

// NormaliseTags trims each tag and drops empty and repeated ones. The
// order of first appearance is preserved.
func NormaliseTags(tags []string) []string {
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}

		out = append(out, tag)
	}

	return out
}

// SplitTags parses a comma separated list of tags.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return NormaliseTags(strings.Split(s, ","))
}

// MeditationLog is a completed meditation session. Any number of logs may
// share a date.
type MeditationLog struct {
	Date      timeutil.Day `json:"date"       yaml:"date"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
	ID        string       `json:"id"         yaml:"id"`
	Music     []string     `json:"music"      yaml:"music"`
	// Duration is in seconds.
	Duration int `json:"duration" yaml:"duration"`
}

func (m *MeditationLog) Day() timeutil.Day {
	return m.Date
}

// Minutes returns the session length rounded to the nearest minute.
func (m *MeditationLog) Minutes() int {
	return timeutil.Round(float64(m.Duration) / 60)
}

func (m *MeditationLog) Validate() error {
	if m.Date.IsZero() {
		return errMissingDate
	}

	if m.Duration <= 0 {
		return errInvalidDuration.Fmt(m.Duration)
	}

	return nil
}

// GoalKind is the period over which a goal is measured.
type GoalKind = timeutil.Granularity

// Goal is a target number of meditation minutes per day, week or month.
type Goal struct {
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	ID        string    `json:"id"         yaml:"id"`
	Kind      GoalKind  `json:"kind"       yaml:"kind"`
	// Target is in minutes.
	Target int `json:"target" yaml:"target"`
}

func (g *Goal) Validate() error {
	if _, err := timeutil.ParseGranularity(string(g.Kind)); err != nil {
		return errInvalidGoalKind.Fmt(g.Kind)
	}

	if g.Target <= 0 {
		return errInvalidGoalTarget.Fmt(g.Target)
	}

	return nil
}

// AsDated converts a slice of records to the Dated interface.
func AsDated[T Dated](records []T) []Dated {
	out := make([]Dated, len(records))

	for i := range records {
		out[i] = records[i]
	}

	return out
}
