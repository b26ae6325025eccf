package cli

import (
	"fmt"
	"time"

	"mealweek/internal/calendar"
	"mealweek/internal/models"
	"mealweek/internal/planner"
)

type PlanShowCmd struct {
	WeekOf string `help:"Show the week containing this date (YYYY-MM-DD). Defaults to today." default:"today"`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	anchor, err := parseDate(c.WeekOf)
	if err != nil {
		return err
	}
	weekStart := calendar.WeekStart(anchor)

	entries, err := ctx.Store.GetScheduledMeals(weekStart, calendar.WeekEnd(weekStart))
	if err != nil {
		return err
	}
	today := calendar.Truncate(time.Now())
	days := planner.BuildWeekDays(weekStart, today, entries)

	fmt.Printf("%s\n\n", calendar.WeekLabel(weekStart))
	for _, day := range days {
		marker := " "
		if day.IsToday {
			marker = "●"
		}
		fmt.Printf("%s %s\n", marker, day.Date.Format("Mon Jan 2"))
		for _, slot := range models.SlotTypes() {
			name := "—"
			if meal := day.Slots[slot]; meal != nil {
				name = meal.Name
			}
			fmt.Printf("    %-9s  %s\n", slot.DisplayName(), name)
		}
	}
	return nil
}

type PlanAssignCmd struct {
	Date string `arg:"" help:"Date to plan (YYYY-MM-DD, 'today', or 'tomorrow')."`
	Slot string `arg:"" help:"Slot: breakfast, lunch, or dinner."`
	Meal string `arg:"" help:"ID or name of the meal to assign."`
}

func (c *PlanAssignCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	slot, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}
	meal, err := resolveMeal(ctx.Store, c.Meal)
	if err != nil {
		return err
	}

	if err := ctx.Store.UpsertScheduledMeal(meal.ID, date, slot); err != nil {
		return fmt.Errorf("failed to assign meal: %w", err)
	}
	fmt.Printf("✓ %s on %s: %s\n", slot.DisplayName(), calendar.FormatDate(date), meal.Name)
	return nil
}

type PlanRemoveCmd struct {
	Date string `arg:"" help:"Date to clear (YYYY-MM-DD, 'today', or 'tomorrow')."`
	Slot string `arg:"" help:"Slot: breakfast, lunch, or dinner."`
}

func (c *PlanRemoveCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	slot, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteScheduledMeal(date, slot); err != nil {
		return fmt.Errorf("failed to remove meal: %w", err)
	}
	fmt.Printf("✓ Cleared %s on %s\n", slot.DisplayName(), calendar.FormatDate(date))
	return nil
}

type PlanClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *PlanClearCmd) Run(ctx *Context) error {
	if !c.Force {
		confirmed, err := confirmOnStdin("This removes every planned meal across all weeks. Continue?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	if err := ctx.Store.ClearSchedule(); err != nil {
		return fmt.Errorf("failed to clear schedule: %w", err)
	}
	fmt.Println("✓ Schedule cleared. The meal catalog is untouched.")
	return nil
}
