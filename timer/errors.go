package timer

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errDurationWhileRunning = &apperr.Error{
		Message: "the duration cannot be changed while the timer is running",
	}

	errInvalidDuration = &apperr.Error{
		Message: "timer duration must be a positive number of seconds, got %d",
	}

	errSaveSession = &apperr.Error{
		Message: "unable to save the meditation session",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to run session_cmd %q",
	}
)

// Exported sentinels for callers that need errors.Is.
var (
	ErrDurationWhileRunning = errDurationWhileRunning
	ErrInvalidDuration      = errInvalidDuration
)
