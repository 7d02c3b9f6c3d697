package store

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errStillRunning = &apperr.Error{
		Message: "is still already running? Only one instance can access the journal at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q: must be bolt or sqlite",
	}

	errReflectionNotFound = &apperr.Error{
		Message: "no reflection found for %s",
	}

	errLogNotFound = &apperr.Error{
		Message: "no meditation log found with id %s",
	}

	errGoalNotFound = &apperr.Error{
		Message: "no goal found with id %s",
	}

	errMigration = &apperr.Error{
		Message: "migrating the database to version %d failed",
	}
)

// Exported sentinels for callers that need errors.Is.
var (
	ErrReflectionNotFound = errReflectionNotFound
	ErrLogNotFound        = errLogNotFound
	ErrGoalNotFound       = errGoalNotFound
	ErrStillRunning       = errStillRunning
)
