// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	boltDriver   = "bolt"
	sqliteDriver = "sqlite"
)

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
	tracksDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv("STILL_ENV"))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		appDir:         "still",
		configFileName: "config.yml",
		boltFileName:   "still.db",
		sqliteFileName: "still.sqlite",
		logFileName:    "still.log",
	}

	p.applyEnvironmentOverrides(env)

	return p
}

func Dir() string {
	return paths.appDir
}

func ConfigFilePath() string {
	return paths.configFilePath
}

// DBFilePath returns the database file for the given storage driver.
func DBFilePath(driver string) string {
	return paths.dbFilePath(driver)
}

func LogFilePath() string {
	return paths.logFilePath
}

// TracksDir is where ambient audio tracks are looked up.
func TracksDir() string {
	return paths.tracksDir
}

func (p *Paths) dbFilePath(driver string) string {
	if driver == sqliteDriver {
		return filepath.Join(p.dataDir, p.sqliteFileName)
	}

	return filepath.Join(p.dataDir, p.boltFileName)
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.boltFileName = fmt.Sprintf("still_%s.db", env)
	p.sqliteFileName = fmt.Sprintf("still_%s.sqlite", env)
	p.logFileName = fmt.Sprintf("still_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	p.tracksDir = filepath.Join(p.dataDir, "tracks")

	return nil
}
