// Package sound plays looping ambient tracks in step with the meditation
// timer
package sound

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Off disables the ambient track.
const Off = "off"

// Extensions lists the supported audio formats in lookup order.
var Extensions = []string{".ogg", ".mp3", ".flac", ".wav"}

// Track is an ambient audio track. File is the base name of the audio
// file in the tracks directory, or an absolute path to an audio file.
type Track struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// Catalog is the fixed set of built-in tracks.
var Catalog = []Track{
	{Name: "Rain Sounds", File: "rain"},
	{Name: "Ocean Waves", File: "ocean_waves"},
	{Name: "Forest Birds", File: "forest_birds"},
	{Name: "Tibetan Bowls", File: "tibetan_bowls"},
}

func stripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

func validExtension(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Available returns the catalog followed by any other audio files found
// in dir, in natural order.
func Available(dir string) []Track {
	tracks := slices.Clone(Catalog)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return tracks
	}

	var extra []Track

	for _, e := range entries {
		if e.IsDir() || !validExtension(e.Name()) {
			continue
		}

		name := stripExtension(e.Name())

		known := slices.ContainsFunc(tracks, func(t Track) bool {
			return t.File == name
		}) || slices.ContainsFunc(extra, func(t Track) bool {
			return t.File == name
		})
		if known {
			continue
		}

		extra = append(extra, Track{Name: name, File: name})
	}

	slices.SortFunc(extra, func(a, b Track) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})

	return append(tracks, extra...)
}

// Lookup resolves a track by display name, file key, or absolute path to
// an audio file. An empty name or "off" returns nil.
func Lookup(dir, name string) (*Track, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, Off) {
		return nil, nil
	}

	if filepath.IsAbs(name) {
		if !validExtension(name) {
			return nil, errInvalidSoundFormat.Fmt(name)
		}

		return &Track{Name: stripExtension(filepath.Base(name)), File: name}, nil
	}

	for _, t := range Available(dir) {
		if strings.EqualFold(t.Name, name) || strings.EqualFold(t.File, name) {
			return &t, nil
		}
	}

	return nil, errUnknownTrack.Fmt(name)
}

// Path locates the audio file for the track.
func (t Track) Path(dir string) (string, error) {
	if filepath.IsAbs(t.File) {
		return t.File, nil
	}

	for _, ext := range Extensions {
		path := filepath.Join(dir, t.File+ext)

		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", errTrackNotFound.Fmt(t.Name, dir)
}
