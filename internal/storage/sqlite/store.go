// Package sqlite is the default storage backend, a single database file under
// the user's config directory driven by the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"mealweek/internal/constants"
	"mealweek/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return s.seedCatalog()
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'mealweek init' first")
	}

	return s.open()
}

func (s *Store) open() error {
	// foreign_keys must be enabled per connection for the meal -> schedule
	// delete cascade to fire.
	db, err := sql.Open("sqlite", s.path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	goose.SetBaseFS(subFS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.Up(s.db, ".")
}

// seedCatalog inserts the starter meals into an empty catalog so a fresh
// install has something to assign.
func (s *Store) seedCatalog() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM meals").Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect meal catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range constants.SeedMeals {
		if _, err := s.InsertMeal(name); err != nil {
			return fmt.Errorf("failed to seed meal catalog: %w", err)
		}
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
