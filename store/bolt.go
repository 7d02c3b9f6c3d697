package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/osutil"
	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

const (
	reflectionBucket = "reflections"
	logBucket        = "meditation_logs"
	goalBucket       = "goals"
	settingBucket    = "settings"
	metaBucket       = "meta"
)

var buckets = []string{
	reflectionBucket,
	logBucket,
	goalBucket,
	settingBucket,
	metaBucket,
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) UpsertReflection(r *models.Reflection) error {
	key := r.Date.Key()

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(reflectionBucket))

		if v := b.Get(key); v != nil {
			var existing models.Reflection

			if err := json.Unmarshal(v, &existing); err != nil {
				return err
			}

			r.ID = existing.ID
			r.CreatedAt = existing.CreatedAt
		}

		stamp(&r.ID, &r.CreatedAt)

		r.UpdatedAt = time.Now()

		value, err := json.Marshal(r)
		if err != nil {
			return err
		}

		return b.Put(key, value)
	})
}

func (c *Client) GetReflection(day timeutil.Day) (*models.Reflection, error) {
	var r *models.Reflection

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(reflectionBucket)).Get(day.Key())
		if v == nil {
			return errReflectionNotFound.Fmt(day)
		}

		r = &models.Reflection{}

		return json.Unmarshal(v, r)
	})

	return r, err
}

func (c *Client) GetReflections(
	from, to timeutil.Day,
) ([]*models.Reflection, error) {
	var reflections []*models.Reflection

	err := c.View(func(tx *bolt.Tx) error {
		return scanRange(
			tx.Bucket([]byte(reflectionBucket)),
			from,
			to,
			func(v []byte) error {
				r := &models.Reflection{}
				if err := json.Unmarshal(v, r); err != nil {
					return err
				}

				reflections = append(reflections, r)

				return nil
			},
		)
	})

	return reflections, err
}

func (c *Client) DeleteReflection(day timeutil.Day) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(reflectionBucket))

		if b.Get(day.Key()) == nil {
			return errReflectionNotFound.Fmt(day)
		}

		return b.Delete(day.Key())
	})
}

// logKey sorts meditation logs by date, then by creation time.
func logKey(m *models.MeditationLog) []byte {
	return []byte(
		m.Date.String() + "/" +
			m.CreatedAt.UTC().Format(timeKeyLayout) + "/" +
			m.ID,
	)
}

func (c *Client) CreateMeditationLog(m *models.MeditationLog) error {
	stamp(&m.ID, &m.CreatedAt)

	value, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(logBucket)).Put(logKey(m), value)
	})
}

func (c *Client) GetMeditationLogs(
	from, to timeutil.Day,
) ([]*models.MeditationLog, error) {
	var logs []*models.MeditationLog

	err := c.View(func(tx *bolt.Tx) error {
		return scanRange(
			tx.Bucket([]byte(logBucket)),
			from,
			to,
			func(v []byte) error {
				m := &models.MeditationLog{}
				if err := json.Unmarshal(v, m); err != nil {
					return err
				}

				logs = append(logs, m)

				return nil
			},
		)
	})

	return logs, err
}

func (c *Client) DeleteMeditationLogs(ids []string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(logBucket))

		remaining := slices.Clone(ids)

		var keys [][]byte

		err := b.ForEach(func(k, _ []byte) error {
			id := string(k[bytes.LastIndexByte(k, '/')+1:])

			if i := slices.Index(remaining, id); i >= 0 {
				remaining = slices.Delete(remaining, i, i+1)
				keys = append(keys, slices.Clone(k))
			}

			return nil
		})
		if err != nil {
			return err
		}

		if len(remaining) > 0 {
			return errLogNotFound.Fmt(strings.Join(remaining, ", "))
		}

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) SaveGoal(g *models.Goal) error {
	stamp(&g.ID, &g.CreatedAt)

	value, err := json.Marshal(g)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(goalBucket)).Put([]byte(g.ID), value)
	})
}

func (c *Client) GetGoals() ([]*models.Goal, error) {
	var goals []*models.Goal

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(goalBucket)).ForEach(func(_, v []byte) error {
			g := &models.Goal{}
			if err := json.Unmarshal(v, g); err != nil {
				return err
			}

			goals = append(goals, g)

			return nil
		})
	})

	slices.SortStableFunc(goals, func(a, b *models.Goal) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return goals, err
}

func (c *Client) DeleteGoal(id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(goalBucket))

		if b.Get([]byte(id)) == nil {
			return errGoalNotFound.Fmt(id)
		}

		return b.Delete([]byte(id))
	})
}

func (c *Client) GetSetting(key string) (string, error) {
	var value string

	err := c.View(func(tx *bolt.Tx) error {
		value = string(tx.Bucket([]byte(settingBucket)).Get([]byte(key)))
		return nil
	})

	return value, err
}

func (c *Client) SetSetting(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingBucket)).Put([]byte(key), []byte(value))
	})
}

// scanRange calls fn for each value whose key starts with a date in
// [from, to], most recent first.
func scanRange(
	b *bolt.Bucket,
	from, to timeutil.Day,
	fn func(v []byte) error,
) error {
	cur := b.Cursor()

	// every key that starts with the upper date sorts before this one
	upper := []byte(upperBound(to).AddDays(1).String())
	lower := from.Key()

	k, v := cur.Seek(upper)
	if k == nil {
		k, v = cur.Last()
	} else {
		k, v = cur.Prev()
	}

	for ; k != nil && bytes.Compare(k, lower) >= 0; k, v = cur.Prev() {
		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errStillRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	err = db.Update(c.migrate)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
