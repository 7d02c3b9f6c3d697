package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// quit stops the tick chain and the ambient track. No completion is
// recorded for an unfinished run. Saves already issued are waited for.
func (t *Timer) quit() tea.Cmd {
	t.countdown.Cancel()

	if t.opts.Sound != nil {
		t.opts.Sound.Stop()
	}

	if t.inflight > 0 {
		t.quitting = true
		return nil
	}

	return tea.Quit
}

func (t *Timer) handleTick(msg tickMsg) tea.Cmd {
	switch t.countdown.Tick(msg.gen) {
	case EventTick:
		return tick(msg.gen)
	case EventCompleted:
		return t.complete()
	default:
		return nil
	}
}

func (t *Timer) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, defaultKeymap.up):
		if t.menuIndex > 0 {
			t.menuIndex--
		}
	case key.Matches(msg, defaultKeymap.down):
		if t.menuIndex < len(t.menu)-1 {
			t.menuIndex++
		}
	case key.Matches(msg, defaultKeymap.enter):
		t.applyMenu()
	case key.Matches(msg, defaultKeymap.esc):
		t.showMenu = false
	case msg.String() == "ctrl+c":
		return t.quit()
	}

	return nil
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if t.quitting {
		return nil
	}

	if t.showMenu {
		return t.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.countdown.Pause() {
			return nil
		}

		return t.start()

	case key.Matches(msg, defaultKeymap.reset):
		t.reset()

	case key.Matches(msg, defaultKeymap.sound):
		t.openMenu()

	case key.Matches(msg, defaultKeymap.presets):
		t.setPreset(int(msg.Runes[0] - '1'))

	case key.Matches(msg, defaultKeymap.longer):
		t.stepPreset(true)

	case key.Matches(msg, defaultKeymap.shorter):
		t.stepPreset(false)

	case key.Matches(msg, defaultKeymap.enter):
		if t.saveErr != nil {
			return t.save()
		}

	case key.Matches(msg, defaultKeymap.quit):
		return t.quit()
	}

	return nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t, t.handleTick(msg)

	case savedMsg:
		return t, t.handleSaved(msg)

	case postSessionMsg:
		if msg.err != nil {
			t.postErr = msg.err

			slog.Error("post session hook failed", slog.Any("error", msg.err))
		}

		return t, nil

	case tea.KeyMsg:
		return t, t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	slog.Debug(spew.Sdump(msg))

	return t, nil
}
