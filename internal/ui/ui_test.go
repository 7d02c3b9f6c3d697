package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	PrintTable([][]string{{"Date", "Mood"}}, &buf)
	assert.Equal(t, "nothing to show\n", buf.String())

	buf.Reset()

	PrintTable([][]string{{"Date", "Mood"}, {"2025-03-04", "4"}}, &buf)
	assert.Contains(t, buf.String(), "2025-03-04")
	assert.Contains(t, buf.String(), "Mood")
}

func TestMoodLabel(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	for mood := 1; mood <= 5; mood++ {
		assert.Equal(t, "label", Mood(mood, "label"))
	}
}
