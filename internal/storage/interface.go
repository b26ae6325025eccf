package storage

import (
	"context"
	"time"

	"mealweek/internal/models"
)

// Provider is the narrow contract the planner and CLI consume. Two backends
// implement it: SQLite (default) and PostgreSQL.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Meal catalog
	InsertMeal(name string) (int64, error)
	GetMeal(id int64) (models.Meal, error)
	GetAllMeals() ([]models.Meal, error)
	DeleteMeal(id int64) error

	// Scheduled meals. At most one entry exists per (date, slot); upsert
	// replaces and delete is idempotent.
	GetScheduledMeals(start, end time.Time) ([]models.ScheduledMeal, error)
	UpsertScheduledMeal(mealID int64, date time.Time, slot models.SlotType) error
	DeleteScheduledMeal(date time.Time, slot models.SlotType) error
	ClearSchedule() error

	// Live reads. Each channel emits the current snapshot immediately and a
	// fresh one after every write through this Provider, until ctx ends.
	ObserveMeals(ctx context.Context) <-chan []models.Meal
	ObserveSchedule(ctx context.Context, start, end time.Time) <-chan []models.ScheduledMeal

	// Utils
	GetConfigPath() string
}
