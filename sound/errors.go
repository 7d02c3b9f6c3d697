package sound

import "github.com/Shrinivasofficial/evening-stillness-reflections/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownTrack = &apperr.Error{
		Message: "unknown ambient track: %s",
	}

	errTrackNotFound = &apperr.Error{
		Message: "audio file for %q not found in %s",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to open the audio device",
	}
)

// ErrUnknownTrack is returned when a track name matches neither the
// catalog nor a file in the tracks directory.
var ErrUnknownTrack = errUnknownTrack
