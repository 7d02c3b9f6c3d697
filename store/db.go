// Package store persists reflections, meditation logs, goals and settings
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

// Driver names the storage backend.
type Driver string

const (
	BoltDriver   Driver = "bolt"
	SQLiteDriver Driver = "sqlite"
)

// timeKeyLayout is a fixed width RFC3339 layout that sorts chronologically
// as text.
const timeKeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// lastDay bounds range queries that have no upper limit.
var lastDay = timeutil.NewDay(9000, time.December, 31)

// DB is the database storage interface. Range queries include both ends;
// a zero from or to leaves that end open. Results are sorted by date,
// most recent first.
type DB interface {
	// UpsertReflection creates the reflection for r.Date or replaces the
	// existing one, keeping its ID and creation time.
	UpsertReflection(r *models.Reflection) error
	GetReflection(day timeutil.Day) (*models.Reflection, error)
	GetReflections(from, to timeutil.Day) ([]*models.Reflection, error)
	DeleteReflection(day timeutil.Day) error
	CreateMeditationLog(m *models.MeditationLog) error
	GetMeditationLogs(from, to timeutil.Day) ([]*models.MeditationLog, error)
	// DeleteMeditationLogs removes the logs with the given IDs. Nothing is
	// removed if any of the IDs is unknown.
	DeleteMeditationLogs(ids []string) error
	SaveGoal(g *models.Goal) error
	GetGoals() ([]*models.Goal, error)
	DeleteGoal(id string) error
	// GetSetting returns an empty string for unknown keys.
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
	Close() error
}

// Open connects to the store at path using the named driver.
func Open(driver Driver, path string) (DB, error) {
	switch driver {
	case BoltDriver, "":
		return NewClient(path)
	case SQLiteDriver:
		return NewSQLite(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}

func newID() string {
	return uuid.NewString()
}

func upperBound(to timeutil.Day) timeutil.Day {
	if to.IsZero() {
		return lastDay
	}

	return to
}

// stamp fills in the ID and creation time of a new record.
func stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = newID()
	}

	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}
