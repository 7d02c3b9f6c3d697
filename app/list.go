package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/ui"
)

const (
	noReflectionsMsg = "No reflections found for the specified time range"
	noLogsMsg        = "No meditation sessions found for the specified time range"
	dateLayout       = "Mon, Jan 02 2006"
	maxAnswerWidth   = 40
)

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")

	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}

// printReflections prints a reflection table to the command-line.
func printReflections(w io.Writer, reflections []*models.Reflection) {
	if len(reflections) == 0 {
		pterm.Info.Println(noReflectionsMsg)
		return
	}

	tableBody := [][]string{
		{"DATE", "MOOD", "WENT WELL", "FELL SHORT", "TRY AGAIN", "TAGS"},
	}

	for _, r := range reflections {
		tableBody = append(tableBody, []string{
			r.Date.Format(dateLayout),
			ui.Mood(r.Mood, r.MoodLabel()),
			truncate(r.Well, maxAnswerWidth),
			truncate(r.Short, maxAnswerWidth),
			truncate(r.Again, maxAnswerWidth),
			strings.Join(r.Tags, " · "),
		})
	}

	ui.PrintTable(tableBody, w)
}

// printLogs prints a meditation log table to the command-line.
func printLogs(w io.Writer, logs []*models.MeditationLog) {
	if len(logs) == 0 {
		pterm.Info.Println(noLogsMsg)
		return
	}

	tableBody := [][]string{
		{"#", "ID", "DATE", "DURATION", "MUSIC"},
	}

	var total int

	for i, l := range logs {
		total += l.Duration

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			l.ID,
			l.Date.Format(dateLayout),
			timeutil.FormatSeconds(l.Duration),
			strings.Join(l.Music, ", "),
		})
	}

	ui.PrintTable(tableBody, w)

	fmt.Fprintf(
		w,
		"%s %s across %d sessions\n",
		ui.Blue("Total:"),
		ui.Highlight(timeutil.FormatSeconds(total)),
		len(logs),
	)
}
