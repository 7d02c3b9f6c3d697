package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/config"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/logger"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/pathutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/ui"
	"github.com/Shrinivasofficial/evening-stillness-reflections/report"
	"github.com/Shrinivasofficial/evening-stillness-reflections/sound"
	"github.com/Shrinivasofficial/evening-stillness-reflections/stats"
	"github.com/Shrinivasofficial/evening-stillness-reflections/store"
	"github.com/Shrinivasofficial/evening-stillness-reflections/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envStillNoColor = "STILL_NO_COLOR"
)

const (
	kindReflection = "Reflection"
	kindMeditation = "Meditation"
)

// env holds what every command works with.
type env struct {
	now      time.Time
	cfg      *config.Config
	db       store.DB
	notifier report.Notifier
	out      io.Writer
	log      io.Closer
}

func (e *env) today() timeutil.Day {
	return timeutil.DayOf(e.now)
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
	}

	if e.log != nil {
		_ = e.log.Close()
	}
}

// setup loads the configuration, starts logging and opens the journal.
// extra options are applied after the config file.
func setup(ctx *cli.Context, extra ...config.Option) (*env, error) {
	configPath := pathutil.ConfigFilePath()

	opts := append([]config.Option{
		config.WithTracksDir(pathutil.TracksDir()),
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	}, extra...)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	e := &env{
		now: time.Now(),
		cfg: cfg,
		out: config.Stdout,
		log: logger.Setup(pathutil.LogFilePath(), cfg.Log.Level),
		notifier: &report.Desktop{
			Enabled: cfg.Notifications.Enabled,
		},
	}

	e.db, err = store.Open(
		store.Driver(cfg.Storage.Driver),
		pathutil.DBFilePath(cfg.Storage.Driver),
	)
	if err != nil {
		e.close()
		return nil, err
	}

	slog.Debug(
		"journal opened",
		slog.String("driver", cfg.Storage.Driver),
		slog.Any("args", ctx.Args().Slice()),
	)

	return e, nil
}

// celebrate announces a streak milestone for the kind of record once per
// day.
func celebrate(
	s stats.Settings,
	n report.Notifier,
	kind string,
	records []models.Dated,
	today timeutil.Day,
) error {
	streak := stats.ComputeStreaks(records, today)

	msg, ok, err := stats.CelebrateMilestone(s, kind, streak, today)
	if err != nil || !ok {
		return err
	}

	report.Celebrate(msg)

	if n != nil {
		_ = n.Notify(kind+" streak milestone", msg)
	}

	return nil
}

// meditateAction runs the meditation timer.
func meditateAction(ctx *cli.Context) error {
	e, err := setup(ctx, config.WithCLIConfig(ctx))
	if err != nil {
		return err
	}

	defer e.close()

	tracksDir := pathutil.TracksDir()

	track, err := sound.Lookup(tracksDir, e.cfg.Meditation.Sound)
	if err != nil {
		return err
	}

	player := sound.NewSpeakerPlayer(tracksDir)
	defer player.Close()

	coordinator := sound.NewCoordinator(player)
	coordinator.Select(track)

	t, err := timer.New(&timer.Options{
		Store: e.db,
		Sound: coordinator,
		Notifier: &report.Desktop{
			Enabled: e.cfg.Notifications.Enabled,
			Chime:   e.cfg.Meditation.Chime,
		},
		SessionCmd:     e.cfg.Meditation.SessionCmd,
		Tracks:         sound.Available(tracksDir),
		Style:          timer.DefaultStyle(e.cfg.Display.DarkTheme),
		Duration:       e.cfg.Meditation.Duration,
		AutoStart:      ctx.Bool("start"),
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
	})
	if err != nil {
		return err
	}

	if _, err = tea.NewProgram(t).Run(); err != nil {
		return err
	}

	if err := coordinator.Err(); err != nil {
		report.Warn("ambient sound unavailable: " + err.Error())
	}

	if err := t.SaveErr(); err != nil {
		report.Warn(err.Error())
	}

	if t.Saved() == nil {
		return nil
	}

	report.Saved("meditation session")

	logs, err := e.db.GetMeditationLogs(timeutil.Day{}, timeutil.Day{})
	if err != nil {
		return err
	}

	today := timeutil.DayOf(time.Now())

	return celebrate(e.db, e.notifier, kindMeditation, models.AsDated(logs), today)
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction handles the edit-config command which opens the still
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR or STILL_NO_COLOR is set
	for _, name := range []string{envNoColor, envStillNoColor} {
		if _, exists := os.LookupEnv(name); exists {
			disableStyling()
		}
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return fmt.Errorf("unable to resolve still's files: %w", err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting still")

	return nil
}
