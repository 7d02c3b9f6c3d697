package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/osutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

const sqliteVersion = 1

// SQLite is a DB backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the SQLite database at dbPath and runs
// migrations.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath != ":memory:" {
		err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
		if err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=1000",
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// NewMemorySQLite creates an in-memory store for testing.
func NewMemorySQLite() (*SQLite, error) {
	return NewSQLite(":memory:")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	var version int

	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= sqliteVersion {
		return nil
	}

	if err := s.migrateV1(); err != nil {
		return errMigration.Fmt(1).Wrap(err)
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", sqliteVersion))

	return err
}

func (s *SQLite) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS reflections (
		id          TEXT PRIMARY KEY,
		date        TEXT NOT NULL UNIQUE,
		mood        INTEGER NOT NULL,
		well        TEXT NOT NULL DEFAULT '',
		short       TEXT NOT NULL DEFAULT '',
		again       TEXT NOT NULL DEFAULT '',
		tags        TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meditation_logs (
		id          TEXT PRIMARY KEY,
		date        TEXT NOT NULL,
		duration    INTEGER NOT NULL,
		music       TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_logs_date ON meditation_logs(date);

	CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL,
		target      INTEGER NOT NULL,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(ddl)

	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeKeyLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}

	return t.Local(), nil
}

func (s *SQLite) UpsertReflection(r *models.Reflection) error {
	stamp(&r.ID, &r.CreatedAt)

	r.UpdatedAt = time.Now()

	tags, err := json.Marshal(r.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO reflections (id, date, mood, well, short, again, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			well = excluded.well,
			short = excluded.short,
			again = excluded.again,
			tags = excluded.tags,
			updated_at = excluded.updated_at`,
		r.ID, r.Date.String(), r.Mood, r.Well, r.Short, r.Again,
		string(tags), formatTime(r.CreatedAt), formatTime(r.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert reflection: %w", err)
	}

	// an existing row keeps its first ID and creation time
	var id, createdAt string

	err = s.db.QueryRow(
		`SELECT id, created_at FROM reflections WHERE date = ?`,
		r.Date.String(),
	).Scan(&id, &createdAt)
	if err != nil {
		return err
	}

	r.ID = id

	r.CreatedAt, err = parseTime(createdAt)

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReflection(row rowScanner) (*models.Reflection, error) {
	var (
		r                                models.Reflection
		date, tags, createdAt, updatedAt string
	)

	err := row.Scan(
		&r.ID, &date, &r.Mood, &r.Well, &r.Short, &r.Again,
		&tags, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if r.Date, err = timeutil.ParseDay(date); err != nil {
		return nil, err
	}

	if err = json.Unmarshal([]byte(tags), &r.Tags); err != nil {
		return nil, err
	}

	if r.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	if r.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}

const reflectionColumns = `id, date, mood, well, short, again, tags, created_at, updated_at`

func (s *SQLite) GetReflection(day timeutil.Day) (*models.Reflection, error) {
	row := s.db.QueryRow(
		`SELECT `+reflectionColumns+` FROM reflections WHERE date = ?`,
		day.String(),
	)

	r, err := scanReflection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errReflectionNotFound.Fmt(day)
	}

	return r, err
}

func (s *SQLite) GetReflections(
	from, to timeutil.Day,
) ([]*models.Reflection, error) {
	rows, err := s.db.Query(
		`SELECT `+reflectionColumns+` FROM reflections
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC`,
		from.String(), upperBound(to).String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}
	defer rows.Close()

	var reflections []*models.Reflection

	for rows.Next() {
		r, err := scanReflection(rows)
		if err != nil {
			return nil, err
		}

		reflections = append(reflections, r)
	}

	return reflections, rows.Err()
}

func (s *SQLite) DeleteReflection(day timeutil.Day) error {
	res, err := s.db.Exec(`DELETE FROM reflections WHERE date = ?`, day.String())
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errReflectionNotFound.Fmt(day)
	}

	return nil
}

func (s *SQLite) CreateMeditationLog(m *models.MeditationLog) error {
	stamp(&m.ID, &m.CreatedAt)

	music, err := json.Marshal(m.Music)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO meditation_logs (id, date, duration, music, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Date.String(), m.Duration, string(music), formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert meditation log: %w", err)
	}

	return nil
}

func (s *SQLite) GetMeditationLogs(
	from, to timeutil.Day,
) ([]*models.MeditationLog, error) {
	rows, err := s.db.Query(
		`SELECT id, date, duration, music, created_at FROM meditation_logs
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC`,
		from.String(), upperBound(to).String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list meditation logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.MeditationLog

	for rows.Next() {
		var (
			m                      models.MeditationLog
			date, music, createdAt string
		)

		if err := rows.Scan(&m.ID, &date, &m.Duration, &music, &createdAt); err != nil {
			return nil, err
		}

		if m.Date, err = timeutil.ParseDay(date); err != nil {
			return nil, err
		}

		if err = json.Unmarshal([]byte(music), &m.Music); err != nil {
			return nil, err
		}

		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}

		logs = append(logs, &m)
	}

	return logs, rows.Err()
}

func (s *SQLite) DeleteMeditationLogs(ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	var missing []string

	for _, id := range ids {
		res, err := tx.Exec(`DELETE FROM meditation_logs WHERE id = ?`, id)
		if err != nil {
			return err
		}

		if n, _ := res.RowsAffected(); n == 0 {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return errLogNotFound.Fmt(strings.Join(missing, ", "))
	}

	return tx.Commit()
}

func (s *SQLite) SaveGoal(g *models.Goal) error {
	stamp(&g.ID, &g.CreatedAt)

	_, err := s.db.Exec(`
		INSERT INTO goals (id, kind, target, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET kind = excluded.kind, target = excluded.target`,
		g.ID, string(g.Kind), g.Target, formatTime(g.CreatedAt),
	)

	return err
}

func (s *SQLite) GetGoals() ([]*models.Goal, error) {
	rows, err := s.db.Query(
		`SELECT id, kind, target, created_at FROM goals ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal

	for rows.Next() {
		var (
			g               models.Goal
			kind, createdAt string
		)

		if err := rows.Scan(&g.ID, &kind, &g.Target, &createdAt); err != nil {
			return nil, err
		}

		g.Kind = models.GoalKind(kind)

		if g.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}

		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

func (s *SQLite) DeleteGoal(id string) error {
	res, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return errGoalNotFound.Fmt(id)
	}

	return nil
}

func (s *SQLite) GetSetting(key string) (string, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}

	return value, nil
}

func (s *SQLite) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)

	return err
}
