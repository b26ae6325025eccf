// Package postgres is the alternative storage backend for users who keep
// their plan in a shared PostgreSQL database. The connection string comes
// from the CLI flag or the OS keyring, never with an embedded password.
package postgres

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"mealweek/internal/constants"
	"mealweek/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

func (s *Store) Init() error {
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
	if err := s.open(); err != nil {
		return err
	}
	// A missing schema means Init never ran against this database.
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'meals')").Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if !exists {
		return fmt.Errorf("storage not initialized, run 'mealweek init' first")
	}
	return nil
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
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
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}

	goose.SetBaseFS(subFS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.Up(s.db, ".")
}

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

// GetConfigPath returns the connection string identifying this store.
func (s *Store) GetConfigPath() string {
	return s.connStr
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
