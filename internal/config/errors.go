package config

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errParseDuration = &apperr.Error{
		Message: "invalid duration format: %s",
	}

	errInvalidDuration = &apperr.Error{
		Message: "meditation duration must be between %v and %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --duration value",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q (must be bolt or sqlite)",
	}

	errUnknownLevel = &apperr.Error{
		Message: "unknown log level %q (must be debug, info, warn or error)",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}
)

// Exported sentinels for callers that need errors.Is.
var (
	ErrConfigValidation = errConfigValidation
	ErrInvalidDuration  = errInvalidDuration
	ErrUnknownDriver    = errUnknownDriver
)
