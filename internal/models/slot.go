package models

import (
	"fmt"
	"strings"
)

// SlotType identifies one of the three daily meal periods.
type SlotType string

const (
	SlotBreakfast SlotType = "breakfast"
	SlotLunch     SlotType = "lunch"
	SlotDinner    SlotType = "dinner"
)

// SlotTypes returns all slot types in display order.
func SlotTypes() []SlotType {
	return []SlotType{SlotBreakfast, SlotLunch, SlotDinner}
}

// DisplayName returns the user-facing label for the slot.
func (s SlotType) DisplayName() string {
	switch s {
	case SlotBreakfast:
		return "Breakfast"
	case SlotLunch:
		return "Lunch"
	case SlotDinner:
		return "Dinner"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the three known slot types.
func (s SlotType) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return true
	}
	return false
}

// ParseSlotType parses a slot name (case-insensitive).
func ParseSlotType(s string) (SlotType, error) {
	slot := SlotType(strings.ToLower(strings.TrimSpace(s)))
	if !slot.Valid() {
		return "", fmt.Errorf("invalid slot type: %q (expected breakfast, lunch, or dinner)", s)
	}
	return slot, nil
}
