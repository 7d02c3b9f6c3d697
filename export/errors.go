package export

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errUnknownFormat = &apperr.Error{
		Message: "unknown export format %q (must be json or yaml)",
	}

	errCollect = &apperr.Error{
		Message: "unable to read records for export",
	}
)

var ErrUnknownFormat = errUnknownFormat
