package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
)

// formatRemaining returns the remaining time formatted as "MM:SS".
func formatRemaining(secs int) string {
	m, s := timeutil.SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (t *Timer) statusView() string {
	style := t.opts.Style

	switch t.countdown.State() {
	case Running:
		timeFormat := "03:04 PM"
		if t.opts.TwentyFourHour {
			timeFormat = "15:04"
		}

		return style.Hint.Render("until " + t.endTime.Format(timeFormat))
	case Paused:
		return style.Secondary.Render("[Paused]")
	case Completed:
		return t.completedView()
	default:
		return style.Hint.Render(
			timeutil.FormatSeconds(t.countdown.Configured()) + " session",
		)
	}
}

func (t *Timer) completedView() string {
	style := t.opts.Style

	switch {
	case t.saving:
		return style.Hint.Render("Saving session…")
	case t.saveErr != nil:
		return style.Error.Render(t.saveErr.Error()) + "\n" +
			style.Hint.Render("press enter to retry or r to discard")
	case t.saved != nil:
		s := style.Success.Render("Session complete and saved 🧘")
		if t.postErr != nil {
			s += "\n" + style.Error.Render(t.postErr.Error())
		}

		return s
	default:
		return style.Success.Render("Session complete")
	}
}

func (t *Timer) trackName() string {
	if t.opts.Sound == nil {
		return sound.Off
	}

	if sel := t.opts.Sound.Selected(); sel != nil {
		return sel.Name
	}

	return sound.Off
}

func (t *Timer) timerView() string {
	var s strings.Builder

	style := t.opts.Style

	s.WriteString(style.Title.Render("Meditation"))
	s.WriteString(" ")
	s.WriteString(t.statusView())
	s.WriteString("\n\n")
	s.WriteString(style.Main.Render(formatRemaining(t.countdown.Remaining())))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.countdown.Progress()))
	s.WriteString("\n\n")
	s.WriteString(style.Hint.Render("♪ " + t.trackName()))

	return s.String()
}

func (t *Timer) menuView() string {
	var s strings.Builder

	s.WriteString(t.opts.Style.Secondary.Render("Ambient sound"))
	s.WriteString("\n")

	for i, name := range t.menu {
		if i == t.menuIndex {
			s.WriteString(t.opts.Style.Selected.Render("> " + name))
		} else {
			s.WriteString("  " + name)
		}

		s.WriteString("\n")
	}

	s.WriteString("\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.esc,
	}))

	return s.String()
}

func (t *Timer) helpView() string {
	if t.saveErr != nil {
		return t.help.ShortHelpView([]key.Binding{
			defaultKeymap.enter,
			defaultKeymap.reset,
			defaultKeymap.quit,
		})
	}

	return t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.presets,
		defaultKeymap.longer,
		defaultKeymap.sound,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	view := t.timerView()

	if t.quitting {
		view += "\n\n" + t.opts.Style.Hint.Render("Finishing save before exit…")
		return t.opts.Style.Base.Render(view)
	}

	if t.showMenu {
		view += "\n\n" + t.menuView()
	} else {
		view += "\n\n" + t.helpView()
	}

	return t.opts.Style.Base.Render(view)
}
