package stats

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

const (
	barChartChar = "▇"
	chartWidth   = 56
	chartHeight  = 10
	dayLabel     = "Mon 02"
)

var (
	moodColors = map[int]lipgloss.Color{
		1: lipgloss.Color("#E06C75"),
		2: lipgloss.Color("#D19A66"),
		3: lipgloss.Color("#E5C07B"),
		4: lipgloss.Color("#98C379"),
		5: lipgloss.Color("#61AFEF"),
	}

	minutesColor = lipgloss.Color("#56B6C2")
	emptyColor   = lipgloss.Color("#5C6370")
)

// DayMinutes is the number of minutes meditated on a day.
type DayMinutes struct {
	Day     timeutil.Day `json:"day"     yaml:"day"`
	Minutes int          `json:"minutes" yaml:"minutes"`
}

// DailyMinutes totals the minutes meditated on each of the n days ending
// today, oldest first.
func DailyMinutes(
	logs []*models.MeditationLog,
	today timeutil.Day,
	n int,
) []DayMinutes {
	w := timeutil.Trailing(today, n)

	totals := make(map[timeutil.Day]int)

	for _, l := range InWindow(logs, w) {
		totals[l.Date] += l.Minutes()
	}

	days := make([]DayMinutes, 0, n)

	for d := w.Start; d.Before(w.End); d = d.AddDays(1) {
		days = append(days, DayMinutes{Day: d, Minutes: totals[d]})
	}

	return days
}

func newChart(bars []barchart.BarData) string {
	chart := barchart.New(chartWidth, chartHeight)

	chart.PushAll(bars)
	chart.Draw()

	return chart.View()
}

// MoodChart renders the weekly mood trend as a bar chart. Days without a
// reflection are drawn as empty bars.
func MoodChart(days []DayMood) string {
	bars := make([]barchart.BarData, 0, len(days))

	for _, d := range days {
		value := barchart.BarValue{
			Name:  "none",
			Style: lipgloss.NewStyle().Foreground(emptyColor),
		}

		if d.Mood != nil {
			value = barchart.BarValue{
				Name:  models.MoodLabels[*d.Mood],
				Value: float64(*d.Mood),
				Style: lipgloss.NewStyle().Foreground(moodColors[*d.Mood]),
			}
		}

		bars = append(bars, barchart.BarData{
			Label:  d.Day.Format(dayLabel),
			Values: []barchart.BarValue{value},
		})
	}

	return newChart(bars)
}

// MinutesChart renders meditation minutes per day as a bar chart.
func MinutesChart(days []DayMinutes) string {
	bars := make([]barchart.BarData, 0, len(days))

	for _, d := range days {
		bars = append(bars, barchart.BarData{
			Label: d.Day.Format(dayLabel),
			Values: []barchart.BarValue{
				{
					Name:  "minutes",
					Value: float64(d.Minutes),
					Style: lipgloss.NewStyle().Foreground(minutesColor),
				},
			},
		})
	}

	return newChart(bars)
}

// plainBarChart renders a horizontal pterm bar chart for terminals where
// the block chart does not fit.
func plainBarChart(bars pterm.Bars) string {
	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return chart
}

func plainMoodChart(days []DayMood) string {
	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		bar := pterm.Bar{Label: d.Day.Format(dayLabel)}

		if d.Mood != nil {
			bar.Value = *d.Mood
		}

		bars = append(bars, bar)
	}

	return plainBarChart(bars)
}

func plainMinutesChart(days []DayMinutes) string {
	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		bars = append(bars, pterm.Bar{
			Label: d.Day.Format(dayLabel),
			Value: d.Minutes,
		})
	}

	return plainBarChart(bars)
}
