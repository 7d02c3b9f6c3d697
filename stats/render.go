package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/ui"
)

// RecentDays is the number of days shown in the minutes chart.
const RecentDays = 7

func header(title string) string {
	return pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(title)
}

func getStreak(s Streak, unit string) string {
	return fmt.Sprintf(
		"%s\nCurrent streak: %s\nLongest streak: %s\n",
		ui.Blue("Streak"),
		ui.Green(fmt.Sprintf("%d %s", s.Current, unit)),
		ui.Green(fmt.Sprintf("%d %s", s.Longest, unit)),
	)
}

func getTopTags(tags []TagCount) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Top tags")))

	if len(tags) == 0 {
		builder.WriteString("–\n")
		return builder.String()
	}

	for _, t := range tags {
		builder.WriteString(fmt.Sprintf("%s ×%s\n", t.Tag, ui.Green(t.Count)))
	}

	return builder.String()
}

// PrintWeekly writes the weekly reflection summary to w. The plain flag
// selects the pterm chart instead of the block chart.
func PrintWeekly(w io.Writer, wk Weekly, plain bool) {
	chart := MoodChart(wk.Days)
	if plain {
		chart = plainMoodChart(wk.Days)
	}

	first, last := wk.Days[0].Day, wk.Days[len(wk.Days)-1].Day

	output := fmt.Sprint(
		header(fmt.Sprintf(
			"Weekly summary: %s - %s",
			first.Format("January 02"),
			last.Format("January 02, 2006"),
		)),
		ui.Blue("Mood trend"), "\n",
		chart, "\n",
		getTopTags(wk.TopTags), "\n",
		getStreak(wk.Streak, "days"),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

func getSummary(m Meditation) string {
	return fmt.Sprintf(
		"%s\nSessions: %s\nTime meditated: %s\nAverage session: %s\nLongest session: %s\nShortest session: %s\n",
		ui.Blue("Summary"),
		ui.Green(m.TotalSessions),
		ui.Green(timeutil.FormatSeconds(m.TotalDuration)),
		ui.Green(timeutil.FormatSeconds(m.AverageDuration)),
		ui.Green(timeutil.FormatSeconds(m.LongestSession)),
		ui.Green(timeutil.FormatSeconds(m.ShortestSession)),
	)
}

func getRecent(m Meditation) string {
	return fmt.Sprintf(
		"\n%s\nLast 7 days: %s sessions, %s\nLast 30 days: %s sessions, %s\n",
		ui.Blue("Recent"),
		ui.Green(m.SessionsLastWeek),
		ui.Green(timeutil.FormatSeconds(m.DurationLastWeek)),
		ui.Green(m.SessionsLastMonth),
		ui.Green(timeutil.FormatSeconds(m.DurationLastMonth)),
	)
}

func getAchievement(m Meditation) string {
	next := "You've reached the highest level!"
	if m.SessionsToMaster > 0 {
		next = fmt.Sprintf(
			"Complete %d more sessions to reach Master level",
			m.SessionsToMaster,
		)
	}

	return fmt.Sprintf(
		"\n%s\n%s %s\n%s\n",
		ui.Blue("Achievement"),
		m.Level.Icon,
		ui.Highlight(m.Level.Name),
		next,
	)
}

// PrintMeditation writes the meditation statistics and the minutes of the
// last seven days to w.
func PrintMeditation(w io.Writer, m Meditation, days []DayMinutes, plain bool) {
	if m.TotalSessions == 0 {
		pterm.Info.Println(
			"Complete your first meditation session to unlock your stats",
		)

		return
	}

	chart := MinutesChart(days)
	if plain {
		chart = plainMinutesChart(days)
	}

	output := fmt.Sprint(
		header("Meditation statistics"),
		getSummary(m),
		getRecent(m),
		"\n", getStreak(m.Streak, "days"),
		getAchievement(m),
		"\n", ui.Blue(fmt.Sprintf("Last %d days (minutes)", RecentDays)), "\n",
		chart,
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

// PrintGoals writes a table of goal progress to w.
func PrintGoals(w io.Writer, goals []GoalProgress) {
	if len(goals) == 0 {
		pterm.Info.Println("No goals set. Add one with 'still goals add'")
		return
	}

	rows := [][]string{
		{"ID", "KIND", "PERIOD", "PROGRESS", "STATUS"},
	}

	for _, p := range goals {
		status := ui.Cyan(fmt.Sprintf("%.0f%%", p.Percent))
		if p.Completed {
			status = ui.Green("completed")
		}

		rows = append(rows, []string{
			p.Goal.ID,
			string(p.Goal.Kind),
			p.PeriodStart.Format("Jan 02") + " - " +
				p.PeriodEnd.AddDays(-1).Format("Jan 02, 2006"),
			fmt.Sprintf("%d / %d min", p.Current, p.Goal.Target),
			status,
		})
	}

	ui.PrintTable(rows, w)
}
