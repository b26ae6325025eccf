package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mealweek/internal/constants"
	"mealweek/internal/models"
)

func setupTestStore(t *testing.T) Provider {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// waitFor receives the next emission from ch or fails the test.
func waitFor[T any](t *testing.T, ch <-chan []T) []T {
	t.Helper()
	select {
	case items, ok := <-ch:
		if !ok {
			t.Fatal("observe channel closed unexpectedly")
		}
		return items
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for emission")
		return nil
	}
}

func TestInitSeedsCatalog(t *testing.T) {
	store := setupTestStore(t)

	meals, err := store.GetAllMeals()
	if err != nil {
		t.Fatalf("GetAllMeals() returned error: %v", err)
	}
	if len(meals) != len(constants.SeedMeals) {
		t.Fatalf("fresh catalog has %d meals, want %d", len(meals), len(constants.SeedMeals))
	}
	for i := 1; i < len(meals); i++ {
		if meals[i-1].Name > meals[i].Name {
			t.Errorf("catalog not ordered by name: %q before %q", meals[i-1].Name, meals[i].Name)
		}
	}
}

func TestInitTwiceKeepsCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init() returned error: %v", err)
	}
	if _, err := store.InsertMeal("Chili"); err != nil {
		t.Fatalf("InsertMeal() returned error: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() returned error: %v", err)
	}
	defer store.Close()

	meals, err := store.GetAllMeals()
	if err != nil {
		t.Fatalf("GetAllMeals() returned error: %v", err)
	}
	if len(meals) != len(constants.SeedMeals)+1 {
		t.Errorf("catalog has %d meals after re-init, want %d", len(meals), len(constants.SeedMeals)+1)
	}
}

func TestLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database did not return an error")
	}
}

func TestMealCRUD(t *testing.T) {
	store := setupTestStore(t)

	id, err := store.InsertMeal("Lentil Soup")
	if err != nil {
		t.Fatalf("InsertMeal() returned error: %v", err)
	}
	if id == 0 {
		t.Fatal("InsertMeal() returned id 0")
	}

	meal, err := store.GetMeal(id)
	if err != nil {
		t.Fatalf("GetMeal(%d) returned error: %v", id, err)
	}
	if meal.Name != "Lentil Soup" {
		t.Errorf("GetMeal(%d).Name = %q, want %q", id, meal.Name, "Lentil Soup")
	}

	if err := store.DeleteMeal(id); err != nil {
		t.Fatalf("DeleteMeal(%d) returned error: %v", id, err)
	}
	if _, err := store.GetMeal(id); err == nil {
		t.Errorf("GetMeal(%d) after delete did not return an error", id)
	}
}

func TestUpsertReplacesExistingAssignment(t *testing.T) {
	store := setupTestStore(t)
	date := testDate(t, "2026-01-12")

	first, err := store.InsertMeal("Oatmeal")
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.InsertMeal("Pancakes")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.UpsertScheduledMeal(first, date, models.SlotBreakfast); err != nil {
		t.Fatalf("first upsert returned error: %v", err)
	}
	if err := store.UpsertScheduledMeal(second, date, models.SlotBreakfast); err != nil {
		t.Fatalf("second upsert returned error: %v", err)
	}

	entries, err := store.GetScheduledMeals(date, date)
	if err != nil {
		t.Fatalf("GetScheduledMeals() returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("slot holds %d entries after replacing upsert, want 1", len(entries))
	}
	if entries[0].Meal.ID != second {
		t.Errorf("slot holds meal %d, want replacement %d", entries[0].Meal.ID, second)
	}
	if entries[0].Slot != models.SlotBreakfast {
		t.Errorf("entry slot = %v, want breakfast", entries[0].Slot)
	}
}

func TestDeleteScheduledMealIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	date := testDate(t, "2026-01-12")

	// Deleting a slot that was never assigned is a silent no-op.
	if err := store.DeleteScheduledMeal(date, models.SlotLunch); err != nil {
		t.Fatalf("delete of empty slot returned error: %v", err)
	}

	id, err := store.InsertMeal("Salad")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertScheduledMeal(id, date, models.SlotLunch); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteScheduledMeal(date, models.SlotLunch); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if err := store.DeleteScheduledMeal(date, models.SlotLunch); err != nil {
		t.Fatalf("repeated delete returned error: %v", err)
	}

	entries, err := store.GetScheduledMeals(date, date)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("slot still holds %d entries after delete", len(entries))
	}
}

func TestDeleteMealCascadesToSchedule(t *testing.T) {
	store := setupTestStore(t)
	date := testDate(t, "2026-01-14")

	id, err := store.InsertMeal("Tacos")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertScheduledMeal(id, date, models.SlotDinner); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteMeal(id); err != nil {
		t.Fatalf("DeleteMeal() returned error: %v", err)
	}

	entries, err := store.GetScheduledMeals(date, date)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("schedule still references deleted meal: %d entries", len(entries))
	}
}

func TestGetScheduledMealsRange(t *testing.T) {
	store := setupTestStore(t)

	id, err := store.InsertMeal("Curry")
	if err != nil {
		t.Fatal(err)
	}

	inside1 := testDate(t, "2026-01-12")
	inside2 := testDate(t, "2026-01-18")
	outside := testDate(t, "2026-01-19")
	for _, d := range []time.Time{inside2, inside1, outside} {
		if err := store.UpsertScheduledMeal(id, d, models.SlotDinner); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.GetScheduledMeals(inside1, inside2)
	if err != nil {
		t.Fatalf("GetScheduledMeals() returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("range query returned %d entries, want 2", len(entries))
	}
	// Ordered by date.
	if !entries[0].Date.Equal(inside1) || !entries[1].Date.Equal(inside2) {
		t.Errorf("entries out of order: %v, %v", entries[0].Date, entries[1].Date)
	}
}

func TestClearSchedule(t *testing.T) {
	store := setupTestStore(t)
	date := testDate(t, "2026-01-12")

	id, err := store.InsertMeal("Pizza")
	if err != nil {
		t.Fatal(err)
	}
	for _, slot := range models.SlotTypes() {
		if err := store.UpsertScheduledMeal(id, date, slot); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ClearSchedule(); err != nil {
		t.Fatalf("ClearSchedule() returned error: %v", err)
	}
	entries, err := store.GetScheduledMeals(date, date)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%d entries remain after ClearSchedule", len(entries))
	}
}

func TestObserveMealsEmitsOnChange(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := store.ObserveMeals(ctx)

	initial := waitFor(t, ch)
	if len(initial) != len(constants.SeedMeals) {
		t.Fatalf("initial emission has %d meals, want %d", len(initial), len(constants.SeedMeals))
	}

	if _, err := store.InsertMeal("Burrito Bowl"); err != nil {
		t.Fatal(err)
	}

	next := waitFor(t, ch)
	if len(next) != len(constants.SeedMeals)+1 {
		t.Fatalf("emission after insert has %d meals, want %d", len(next), len(constants.SeedMeals)+1)
	}
}

func TestObserveScheduleScopedToRange(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	weekStart := testDate(t, "2026-01-12")
	weekEnd := testDate(t, "2026-01-18")
	ch := store.ObserveSchedule(ctx, weekStart, weekEnd)

	if initial := waitFor(t, ch); len(initial) != 0 {
		t.Fatalf("initial emission has %d entries, want 0", len(initial))
	}

	id, err := store.InsertMeal("Ramen")
	if err != nil {
		t.Fatal(err)
	}
	// Insert triggers a re-query; schedule is still empty.
	if afterInsert := waitFor(t, ch); len(afterInsert) != 0 {
		t.Fatalf("emission after catalog insert has %d entries, want 0", len(afterInsert))
	}

	if err := store.UpsertScheduledMeal(id, weekStart, models.SlotDinner); err != nil {
		t.Fatal(err)
	}
	inWeek := waitFor(t, ch)
	if len(inWeek) != 1 {
		t.Fatalf("emission after in-range upsert has %d entries, want 1", len(inWeek))
	}
	if inWeek[0].Meal.Name != "Ramen" {
		t.Errorf("entry meal = %q, want %q", inWeek[0].Meal.Name, "Ramen")
	}

	// Writes outside the observed range re-emit but never include the entry.
	if err := store.UpsertScheduledMeal(id, testDate(t, "2026-01-19"), models.SlotDinner); err != nil {
		t.Fatal(err)
	}
	outOfWeek := waitFor(t, ch)
	if len(outOfWeek) != 1 {
		t.Errorf("emission after out-of-range upsert has %d entries, want 1", len(outOfWeek))
	}
}
