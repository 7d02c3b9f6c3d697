// Package timer runs the meditation countdown in the terminal and records
// completed sessions
package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
)

// Presets are the quick-pick session lengths in minutes.
var Presets = []int{3, 5, 10, 15, 20, 30}

// LogStore persists completed sessions.
type LogStore interface {
	CreateMeditationLog(l *models.MeditationLog) error
}

// Soundscape plays the ambient track while the timer runs.
// *sound.Coordinator satisfies it.
type Soundscape interface {
	Select(t *sound.Track)
	Selected() *sound.Track
	SetRunning(running bool)
	Stop()
	Played() []string
	ResetSession()
}

type Options struct {
	Store    LogStore
	Sound    Soundscape
	Notifier report.Notifier
	// Now defaults to time.Now.
	Now        func() time.Time
	SessionCmd string
	Tracks     []sound.Track
	Style      Style
	Duration   time.Duration
	// AutoStart starts the countdown as soon as the program runs.
	AutoStart      bool
	TwentyFourHour bool
}

type (
	tickMsg struct {
		gen int
	}

	savedMsg struct {
		err error
		log *models.MeditationLog
		run int
	}

	postSessionMsg struct {
		err error
	}
)

// Timer is the bubbletea model that hosts a Countdown.
type Timer struct {
	countdown *Countdown
	pending   *models.MeditationLog
	saved     *models.MeditationLog
	recorded  *models.MeditationLog
	saveErr   error
	postErr   error
	endTime   time.Time
	opts      Options
	help      help.Model
	progress  progress.Model
	menu      []string
	menuIndex int

	// run identifies the current session. Save results from a discarded
	// session carry an older run.
	run      int
	inflight int
	saving   bool
	showMenu bool
	quitting bool
}

// New returns a timer configured from opts.
func New(opts *Options) (*Timer, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c, err := NewCountdown(int(opts.Duration / time.Second))
	if err != nil {
		return nil, err
	}

	t := &Timer{
		countdown: c,
		opts:      *opts,
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
	}

	t.progress.ShowPercentage = false

	if t.opts.Sound != nil {
		c.Subscribe(t.opts.Sound.SetRunning)
	}

	return t, nil
}

// Countdown exposes the underlying state machine.
func (t *Timer) Countdown() *Countdown {
	return t.countdown
}

// Saved returns the most recent session written to the store, if any.
func (t *Timer) Saved() *models.MeditationLog {
	return t.recorded
}

// SaveErr returns the error of a failed save that was neither retried nor
// discarded.
func (t *Timer) SaveErr() error {
	return t.saveErr
}

func (t *Timer) Init() tea.Cmd {
	if t.opts.AutoStart {
		return t.start()
	}

	return nil
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// start begins or resumes the countdown and schedules its first tick.
func (t *Timer) start() tea.Cmd {
	gen, ok := t.countdown.Start()
	if !ok {
		return nil
	}

	t.endTime = t.opts.Now().Add(
		time.Duration(t.countdown.Remaining()) * time.Second,
	)

	return tick(gen)
}

// reset discards the current run, including a failed save.
func (t *Timer) reset() {
	t.countdown.Reset()
	t.discard()
}

// discard forgets the session of the current run. A save still in flight
// is not waited for; its result is ignored when it arrives.
func (t *Timer) discard() {
	t.run++

	t.pending = nil
	t.saved = nil
	t.saveErr = nil
	t.postErr = nil
	t.saving = false

	if t.opts.Sound != nil {
		t.opts.Sound.ResetSession()
	}
}

// complete builds the session record when the countdown reaches zero and
// starts saving it. It never saves the same run twice.
func (t *Timer) complete() tea.Cmd {
	if t.saving || t.saved != nil || t.pending != nil {
		return nil
	}

	var music []string

	if t.opts.Sound != nil {
		t.opts.Sound.Stop()
		music = t.opts.Sound.Played()
	}

	t.pending = &models.MeditationLog{
		Date:     timeutil.DayOf(t.opts.Now()),
		Duration: t.countdown.Configured(),
		Music:    music,
	}

	return t.save()
}

func (t *Timer) save() tea.Cmd {
	if t.pending == nil || t.saving {
		return nil
	}

	t.saving = true
	t.saveErr = nil
	t.inflight++

	l := t.pending
	db := t.opts.Store
	run := t.run

	return func() tea.Msg {
		return savedMsg{log: l, run: run, err: db.CreateMeditationLog(l)}
	}
}

func (t *Timer) handleSaved(msg savedMsg) tea.Cmd {
	t.inflight--

	if msg.err == nil {
		t.recorded = msg.log
	}

	if t.quitting {
		if msg.run == t.run {
			t.saving = false
			t.saveErr = msg.err
		}

		if t.inflight == 0 {
			return tea.Quit
		}

		return nil
	}

	if msg.run != t.run {
		slog.Debug(
			"save result for a discarded session",
			slog.Int("run", msg.run),
			slog.Any("error", msg.err),
		)

		return nil
	}

	t.saving = false

	if msg.err != nil {
		t.saveErr = errSaveSession.Wrap(msg.err)

		slog.Error(
			"meditation session not saved",
			slog.Any("error", msg.err),
		)

		return nil
	}

	t.saved = msg.log
	t.pending = nil

	slog.Info(
		"meditation session saved",
		slog.String("id", msg.log.ID),
		slog.Int("duration", msg.log.Duration),
	)

	return t.postSession(msg.log)
}

// postSession notifies the user and runs the configured session command
// outside the update loop.
func (t *Timer) postSession(l *models.MeditationLog) tea.Cmd {
	notifier := t.opts.Notifier
	sessionCmd := t.opts.SessionCmd

	return func() tea.Msg {
		if notifier != nil {
			_ = notifier.Notify(
				"Meditation complete",
				fmt.Sprintf(
					"You meditated for %s. Take a moment before moving on.",
					timeutil.FormatSeconds(l.Duration),
				),
			)
		}

		return postSessionMsg{err: runSessionCmd(sessionCmd)}
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	return nil
}

// setPreset changes the duration to the preset at index i.
func (t *Timer) setPreset(i int) {
	if i < 0 || i >= len(Presets) {
		return
	}

	err := t.countdown.SetDuration(Presets[i] * 60)
	if err != nil {
		slog.Debug("duration not changed", slog.Any("error", err))
		return
	}

	t.discard()
}

// stepPreset moves to the next longer or shorter preset.
func (t *Timer) stepPreset(longer bool) {
	secs := t.countdown.Configured()

	if longer {
		for i, p := range Presets {
			if p*60 > secs {
				t.setPreset(i)
				return
			}
		}

		return
	}

	for i := len(Presets) - 1; i >= 0; i-- {
		if Presets[i]*60 < secs {
			t.setPreset(i)
			return
		}
	}
}

func (t *Timer) openMenu() {
	t.menu = []string{sound.Off}
	t.menuIndex = 0

	var current string
	if t.opts.Sound != nil {
		if sel := t.opts.Sound.Selected(); sel != nil {
			current = sel.Name
		}
	}

	for i := range t.opts.Tracks {
		t.menu = append(t.menu, t.opts.Tracks[i].Name)

		if t.opts.Tracks[i].Name == current {
			t.menuIndex = i + 1
		}
	}

	t.showMenu = true
}

func (t *Timer) applyMenu() {
	t.showMenu = false

	if t.opts.Sound == nil {
		return
	}

	if t.menuIndex == 0 {
		t.opts.Sound.Select(nil)
		return
	}

	track := t.opts.Tracks[t.menuIndex-1]
	t.opts.Sound.Select(&track)
}
