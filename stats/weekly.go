package stats

import (
	"cmp"
	"slices"

	"github.com/maruel/natural"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

const (
	summaryDays    = 7
	topTagsLimit   = 3
	tagSampleLimit = 7
)

// DayMood is the mood recorded on a day. Mood is nil when there is no
// reflection for the day.
type DayMood struct {
	Mood *int         `json:"mood" yaml:"mood"`
	Day  timeutil.Day `json:"day"  yaml:"day"`
}

// TagCount is the number of reflections carrying a tag.
type TagCount struct {
	Tag   string `json:"tag"   yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// Weekly is the mood trend of the last seven days and the most used tags.
type Weekly struct {
	Days    []DayMood  `json:"days"     yaml:"days"`
	TopTags []TagCount `json:"top_tags" yaml:"top_tags"`
	Streak  Streak     `json:"streak"   yaml:"streak"`
}

// ComputeWeekly builds the weekly summary ending today. reflections must
// be sorted by date, most recent first.
func ComputeWeekly(
	reflections []*models.Reflection,
	today timeutil.Day,
) Weekly {
	byDay := make(map[timeutil.Day]*models.Reflection, len(reflections))

	for _, r := range reflections {
		if _, ok := byDay[r.Date]; !ok {
			byDay[r.Date] = r
		}
	}

	w := Weekly{
		Days:   make([]DayMood, 0, summaryDays),
		Streak: ComputeStreaks(models.AsDated(reflections), today),
	}

	for i := summaryDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)

		dm := DayMood{Day: d}

		if r, ok := byDay[d]; ok {
			mood := r.Mood
			dm.Mood = &mood
		}

		w.Days = append(w.Days, dm)
	}

	w.TopTags = TopTags(reflections[:min(len(reflections), tagSampleLimit)], topTagsLimit)

	return w
}

// TopTags counts tag usage and returns the n most frequent tags. Ties are
// ordered naturally by tag name.
func TopTags(reflections []*models.Reflection, n int) []TagCount {
	counts := make(map[string]int)

	for _, r := range reflections {
		for _, tag := range r.Tags {
			counts[tag]++
		}
	}

	tags := make([]TagCount, 0, len(counts))

	for tag, count := range counts {
		tags = append(tags, TagCount{Tag: tag, Count: count})
	}

	slices.SortFunc(tags, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		if natural.Less(a.Tag, b.Tag) {
			return -1
		}

		if natural.Less(b.Tag, a.Tag) {
			return 1
		}

		return 0
	})

	return tags[:min(len(tags), n)]
}
