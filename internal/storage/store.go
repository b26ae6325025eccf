package storage

import (
	"context"
	"time"

	"mealweek/internal/models"
	"mealweek/internal/storage/postgres"
	"mealweek/internal/storage/sqlite"
)

// backend is what the SQL layers implement: Provider without the live reads.
type backend interface {
	Init() error
	Load() error
	Close() error

	InsertMeal(name string) (int64, error)
	GetMeal(id int64) (models.Meal, error)
	GetAllMeals() ([]models.Meal, error)
	DeleteMeal(id int64) error

	GetScheduledMeals(start, end time.Time) ([]models.ScheduledMeal, error)
	UpsertScheduledMeal(mealID int64, date time.Time, slot models.SlotType) error
	DeleteScheduledMeal(date time.Time, slot models.SlotType) error
	ClearSchedule() error

	GetConfigPath() string
}

// watchedStore lifts a backend into a Provider by broadcasting a change
// notification after every successful write, which drives the Observe*
// channels.
type watchedStore struct {
	backend
	hub *hub
}

// NewSQLiteStore creates a Provider over a SQLite database file.
func NewSQLiteStore(path string) Provider {
	return &watchedStore{backend: sqlite.NewStore(path), hub: newHub()}
}

// NewPostgresStore creates a Provider over a PostgreSQL connection string.
func NewPostgresStore(connStr string) Provider {
	return &watchedStore{backend: postgres.New(connStr), hub: newHub()}
}

func (s *watchedStore) InsertMeal(name string) (int64, error) {
	id, err := s.backend.InsertMeal(name)
	if err == nil {
		s.hub.broadcast()
	}
	return id, err
}

func (s *watchedStore) DeleteMeal(id int64) error {
	err := s.backend.DeleteMeal(id)
	if err == nil {
		s.hub.broadcast()
	}
	return err
}

func (s *watchedStore) UpsertScheduledMeal(mealID int64, date time.Time, slot models.SlotType) error {
	err := s.backend.UpsertScheduledMeal(mealID, date, slot)
	if err == nil {
		s.hub.broadcast()
	}
	return err
}

func (s *watchedStore) DeleteScheduledMeal(date time.Time, slot models.SlotType) error {
	err := s.backend.DeleteScheduledMeal(date, slot)
	if err == nil {
		s.hub.broadcast()
	}
	return err
}

func (s *watchedStore) ClearSchedule() error {
	err := s.backend.ClearSchedule()
	if err == nil {
		s.hub.broadcast()
	}
	return err
}

func (s *watchedStore) ObserveMeals(ctx context.Context) <-chan []models.Meal {
	return observe(ctx, s.hub, s.backend.GetAllMeals)
}

func (s *watchedStore) ObserveSchedule(ctx context.Context, start, end time.Time) <-chan []models.ScheduledMeal {
	return observe(ctx, s.hub, func() ([]models.ScheduledMeal, error) {
		return s.backend.GetScheduledMeals(start, end)
	})
}
