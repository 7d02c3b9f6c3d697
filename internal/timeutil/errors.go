package timeutil

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errInvalidDay = &apperr.Error{
		Message: "invalid date %q: expected the YYYY-MM-DD format",
	}

	errUnparsableDate = &apperr.Error{
		Message: "unable to understand the date %q",
	}

	errUnknownGranularity = &apperr.Error{
		Message: "unknown period granularity: %s",
	}
)

// ErrInvalidDay is returned for malformed calendar dates.
var ErrInvalidDay = errInvalidDay
