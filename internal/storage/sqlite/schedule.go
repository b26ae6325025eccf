package sqlite

import (
	"time"

	"mealweek/internal/calendar"
	"mealweek/internal/models"
)

func (s *Store) GetScheduledMeals(start, end time.Time) ([]models.ScheduledMeal, error) {
	rows, err := s.db.Query(`
		SELECT sm.id, sm.date, sm.slot_type, m.id, m.name
		FROM scheduled_meals sm
		INNER JOIN meals m ON sm.meal_id = m.id
		WHERE sm.date >= ? AND sm.date <= ?
		ORDER BY sm.date, sm.slot_type`,
		calendar.FormatDate(start), calendar.FormatDate(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScheduledMeal
	for rows.Next() {
		var e models.ScheduledMeal
		var date, slot string
		if err := rows.Scan(&e.ID, &date, &slot, &e.Meal.ID, &e.Meal.Name); err != nil {
			return nil, err
		}
		d, err := calendar.ParseDate(date)
		if err != nil {
			return nil, err
		}
		e.Date = d
		e.Slot = models.SlotType(slot)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpsertScheduledMeal(mealID int64, date time.Time, slot models.SlotType) error {
	// Replace-on-conflict keyed by the unique (date, slot_type) index.
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO scheduled_meals (meal_id, date, slot_type)
		VALUES (?, ?, ?)`,
		mealID, calendar.FormatDate(date), string(slot))
	return err
}

func (s *Store) DeleteScheduledMeal(date time.Time, slot models.SlotType) error {
	_, err := s.db.Exec("DELETE FROM scheduled_meals WHERE date = ? AND slot_type = ?",
		calendar.FormatDate(date), string(slot))
	return err
}

func (s *Store) ClearSchedule() error {
	_, err := s.db.Exec("DELETE FROM scheduled_meals")
	return err
}
