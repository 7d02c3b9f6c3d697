package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 60
)

// Style holds the lipgloss styles used by the timer view.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
}

// DefaultStyle returns the timer styles for a dark or light terminal.
func DefaultStyle(dark bool) Style {
	accent := lipgloss.Color("#5A56E0")
	text := lipgloss.Color("#333333")
	hint := lipgloss.Color("#777777")

	if dark {
		accent = lipgloss.Color("#B8B5FF")
		text = lipgloss.Color("#EEEEEE")
		hint = lipgloss.Color("#999999")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(accent),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
	}
}
