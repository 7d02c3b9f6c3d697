package report

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier alerts the user that something finished.
type Notifier interface {
	Notify(title, msg string) error
}

// Desktop sends notifications through the operating system's notification
// service and optionally sounds a chime.
type Desktop struct {
	// Icon is the path to the notification icon. It may be empty.
	Icon    string
	Enabled bool
	Chime   bool
}

// Notify shows title and msg as a desktop notification. The chime is
// attempted even if the notification fails.
func (d *Desktop) Notify(title, msg string) error {
	if !d.Enabled {
		return nil
	}

	err := beeep.Notify(title, msg, d.Icon)
	if err != nil {
		slog.Error(
			"unable to display notification",
			slog.Any("error", err),
		)
	}

	if d.Chime {
		if beepErr := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); beepErr != nil {
			slog.Error("unable to play chime", slog.Any("error", beepErr))
		}
	}

	return err
}
