package models

import "time"

// ScheduledMeal is a catalog meal assigned to a (date, slot) pair.
// The store enforces at most one entry per pair.
type ScheduledMeal struct {
	ID   int64
	Meal Meal
	Date time.Time
	Slot SlotType
}

// DayWithMeals is the derived per-day view of the week plan. Slots always
// holds exactly one key per SlotType; a nil value means the slot is empty.
type DayWithMeals struct {
	Date    time.Time
	IsPast  bool
	IsToday bool
	Slots   map[SlotType]*Meal
}

// SelectedSlot identifies the slot targeted by an open meal picker.
type SelectedSlot struct {
	Date time.Time
	Slot SlotType
}

// MealRemovalRequest identifies a pending removal awaiting confirmation.
type MealRemovalRequest struct {
	Date     time.Time
	Slot     SlotType
	MealName string
}
