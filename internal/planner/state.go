package planner

import (
	"time"

	"mealweek/internal/calendar"
	"mealweek/internal/models"
)

// State is the snapshot the presentation layer renders. WeekDays holds
// exactly seven entries, Monday through Sunday, once the first load has
// completed.
type State struct {
	WeekStart      time.Time
	WeekDays       []models.DayWithMeals
	AvailableMeals []models.Meal
	IsLoading      bool
	SelectedSlot   *models.SelectedSlot
	RemovalRequest *models.MealRemovalRequest
	Err            string
}

// MealAt returns the meal assigned to the given date and slot, or nil when
// the slot is empty or the date is outside the loaded week.
func (s State) MealAt(date time.Time, slot models.SlotType) *models.Meal {
	for _, day := range s.WeekDays {
		if calendar.SameDate(day.Date, date) {
			return day.Slots[slot]
		}
	}
	return nil
}

// clone deep-copies the state so a published snapshot is immune to later
// optimistic updates.
func (s State) clone() State {
	out := s
	if s.WeekDays != nil {
		out.WeekDays = make([]models.DayWithMeals, len(s.WeekDays))
		for i, day := range s.WeekDays {
			copied := day
			copied.Slots = make(map[models.SlotType]*models.Meal, len(day.Slots))
			for slot, meal := range day.Slots {
				if meal != nil {
					m := *meal
					copied.Slots[slot] = &m
				} else {
					copied.Slots[slot] = nil
				}
			}
			out.WeekDays[i] = copied
		}
	}
	if s.AvailableMeals != nil {
		out.AvailableMeals = append([]models.Meal(nil), s.AvailableMeals...)
	}
	if s.SelectedSlot != nil {
		sel := *s.SelectedSlot
		out.SelectedSlot = &sel
	}
	if s.RemovalRequest != nil {
		req := *s.RemovalRequest
		out.RemovalRequest = &req
	}
	return out
}

// BuildWeekDays derives the per-day, per-slot view of a week from the
// scheduled entries that fall inside it. Every day carries all three slots;
// unassigned slots map to nil.
func BuildWeekDays(weekStart, today time.Time, entries []models.ScheduledMeal) []models.DayWithMeals {
	byDate := make(map[string][]models.ScheduledMeal)
	for _, e := range entries {
		key := calendar.FormatDate(e.Date)
		byDate[key] = append(byDate[key], e)
	}

	days := make([]models.DayWithMeals, 0, 7)
	for _, date := range calendar.WeekDates(weekStart) {
		slots := make(map[models.SlotType]*models.Meal, 3)
		for _, slot := range models.SlotTypes() {
			slots[slot] = nil
		}
		for _, e := range byDate[calendar.FormatDate(date)] {
			if e.Slot.Valid() {
				meal := e.Meal
				slots[e.Slot] = &meal
			}
		}
		days = append(days, models.DayWithMeals{
			Date:    date,
			IsPast:  date.Before(today),
			IsToday: calendar.SameDate(date, today),
			Slots:   slots,
		})
	}
	return days
}
