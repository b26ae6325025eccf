// Package cli implements the mealweek command tree. Each command is a kong
// struct whose Run method receives the shared Context.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mealweek/internal/backup"
	"mealweek/internal/calendar"
	"mealweek/internal/logger"
	"mealweek/internal/models"
	"mealweek/internal/storage"
)

type Context struct {
	Store storage.Provider
	// UsingPostgres disables file-based operations like backups.
	UsingPostgres bool
}

// PerformAutomaticBackup snapshots the database on startup. Failures are
// logged, never fatal.
func (c *Context) PerformAutomaticBackup() {
	if c.UsingPostgres {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// parseDate accepts YYYY-MM-DD or the shortcuts "today" and "tomorrow".
func parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return calendar.Truncate(time.Now()), nil
	case "tomorrow":
		return calendar.Truncate(time.Now()).AddDate(0, 0, 1), nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

func parseSlot(s string) (models.SlotType, error) {
	slot, err := models.ParseSlotType(s)
	if err != nil {
		return "", fmt.Errorf("invalid slot %q, expected breakfast, lunch, or dinner", s)
	}
	return slot, nil
}

// resolveMeal looks a meal up by numeric ID or case-insensitive name.
func resolveMeal(store storage.Provider, ref string) (models.Meal, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		meal, err := store.GetMeal(id)
		if err != nil {
			return models.Meal{}, fmt.Errorf("no meal with id %d", id)
		}
		return meal, nil
	}

	meals, err := store.GetAllMeals()
	if err != nil {
		return models.Meal{}, err
	}
	for _, meal := range meals {
		if strings.EqualFold(meal.Name, ref) {
			return meal, nil
		}
	}
	return models.Meal{}, fmt.Errorf("no meal named %q, run 'mealweek meal list'", ref)
}

func confirmOnStdin(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	var response string
	if _, err := fmt.Fscanln(os.Stdin, &response); err != nil {
		return false, nil
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
