package models

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errMissingDate = &apperr.Error{
		Message: "a date is required",
	}

	errInvalidMood = &apperr.Error{
		Message: "mood %d is out of range: must be between %d and %d",
	}

	errInvalidDuration = &apperr.Error{
		Message: "session duration must be positive, got %d seconds",
	}

	errInvalidGoalKind = &apperr.Error{
		Message: "unknown goal kind %q: must be daily, weekly, or monthly",
	}

	errInvalidGoalTarget = &apperr.Error{
		Message: "goal target must be a positive number of minutes, got %d",
	}
)

// Exported sentinels for callers that need errors.Is.
var (
	ErrInvalidMood       = errInvalidMood
	ErrInvalidDuration   = errInvalidDuration
	ErrInvalidGoalKind   = errInvalidGoalKind
	ErrInvalidGoalTarget = errInvalidGoalTarget
)
