package test

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"taskapp/internal/adapter/database/sqlite"
)

// findProjectRoot walks up from this file until it sees go.mod, so tests
// resolve migrations regardless of the package they run in.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("Could not find project root directory")
	return ""
}

// InitTestDB opens a fresh in-memory SQLite database with the real
// schema migrations applied.
func InitTestDB() *sqlite.DB {
	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")

	db, err := sqlite.Open(":memory:", migrationsPath)

	if err != nil {
		log.Fatal(err)
	}

	return db
}
