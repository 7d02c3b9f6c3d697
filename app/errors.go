package app

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errUnknownPeriod = &apperr.Error{
		Message: "unknown period %q: must be one of %s",
	}

	errMissingIDs = &apperr.Error{
		Message: "provide at least one ID",
	}

	errInvalidLogDuration = &apperr.Error{
		Message: "invalid --duration value %q",
	}

	errOutputFile = &apperr.Error{
		Message: "unable to write to %s",
	}

	errAborted = &apperr.Error{
		Message: "operation cancelled",
	}
)
