package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/models"
)

const (
	schemaVersionKey = "schema_version"
	schemaVersion    = 2
)

func readSchemaVersion(tx *bolt.Tx) int {
	b := tx.Bucket([]byte(metaBucket))
	if b == nil {
		return 0
	}

	v, err := strconv.Atoi(string(b.Get([]byte(schemaVersionKey))))
	if err != nil {
		return 0
	}

	return v
}

func createBuckets(tx *bolt.Tx) error {
	for _, name := range buckets {
		if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
			return err
		}
	}

	return nil
}

// rekeyLogs rewrites meditation log keys so that they sort by date and
// creation time in UTC regardless of the zone they were recorded in.
func rekeyLogs(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(logBucket))

	type entry struct {
		oldKey []byte
		newKey []byte
		value  []byte
	}

	var moved []entry

	err := bucket.ForEach(func(k, v []byte) error {
		var m models.MeditationLog

		if err := json.Unmarshal(v, &m); err != nil {
			return err
		}

		newKey := logKey(&m)
		if bytes.Equal(k, newKey) {
			return nil
		}

		moved = append(moved, entry{
			oldKey: bytes.Clone(k),
			newKey: newKey,
			value:  bytes.Clone(v),
		})

		return nil
	})
	if err != nil {
		return err
	}

	for _, e := range moved {
		if err := bucket.Delete(e.oldKey); err != nil {
			return err
		}

		if err := bucket.Put(e.newKey, e.value); err != nil {
			return err
		}
	}

	return nil
}

var migrations = []func(tx *bolt.Tx) error{
	createBuckets,
	rekeyLogs,
}

// migrate brings the database schema up to date.
func (c *Client) migrate(tx *bolt.Tx) error {
	// buckets must exist before any migration reads them
	if err := createBuckets(tx); err != nil {
		return err
	}

	version := readSchemaVersion(tx)

	for v := version; v < schemaVersion; v++ {
		if err := migrations[v](tx); err != nil {
			return errMigration.Fmt(v + 1).Wrap(err)
		}
	}

	return tx.Bucket([]byte(metaBucket)).Put(
		[]byte(schemaVersionKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
