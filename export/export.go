// Package export writes every stored record to a single JSON or YAML
// document
package export

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

// Format is the encoding of an export document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Source reads the records to export. store.DB satisfies it.
type Source interface {
	GetReflections(from, to timeutil.Day) ([]*models.Reflection, error)
	GetMeditationLogs(from, to timeutil.Day) ([]*models.MeditationLog, error)
	GetGoals() ([]*models.Goal, error)
}

// Document is the exported data set. Records keep the store's ordering:
// most recent first.
type Document struct {
	ExportedAt     time.Time               `json:"exported_at"     yaml:"exported_at"`
	Reflections    []*models.Reflection    `json:"reflections"     yaml:"reflections"`
	MeditationLogs []*models.MeditationLog `json:"meditation_logs" yaml:"meditation_logs"`
	Goals          []*models.Goal          `json:"goals"           yaml:"goals"`
}

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", errUnknownFormat.Fmt(s)
	}
}

// FormatFromPath infers the format from the output file's extension,
// defaulting to JSON.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return JSON
	}

	return f
}

// Collect reads all records from src.
func Collect(src Source, now time.Time) (*Document, error) {
	reflections, err := src.GetReflections(timeutil.Day{}, timeutil.Day{})
	if err != nil {
		return nil, errCollect.Wrap(err)
	}

	logs, err := src.GetMeditationLogs(timeutil.Day{}, timeutil.Day{})
	if err != nil {
		return nil, errCollect.Wrap(err)
	}

	goals, err := src.GetGoals()
	if err != nil {
		return nil, errCollect.Wrap(err)
	}

	doc := &Document{
		ExportedAt:     now,
		Reflections:    reflections,
		MeditationLogs: logs,
		Goals:          goals,
	}

	if doc.Reflections == nil {
		doc.Reflections = []*models.Reflection{}
	}

	if doc.MeditationLogs == nil {
		doc.MeditationLogs = []*models.MeditationLog{}
	}

	if doc.Goals == nil {
		doc.Goals = []*models.Goal{}
	}

	return doc, nil
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case JSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}

		_, err = w.Write(append(b, '\n'))

		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	default:
		return errUnknownFormat.Fmt(string(format))
	}
}
