package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

type MealAddCmd struct {
	Name string `arg:"" help:"Name of the meal to add to the catalog."`
}

func (c *MealAddCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("meal name cannot be empty")
	}

	meals, err := ctx.Store.GetAllMeals()
	if err != nil {
		return err
	}
	for _, meal := range meals {
		if strings.EqualFold(meal.Name, name) {
			return fmt.Errorf("meal %q already exists (id %d)", meal.Name, meal.ID)
		}
	}

	id, err := ctx.Store.InsertMeal(name)
	if err != nil {
		return fmt.Errorf("failed to add meal: %w", err)
	}
	fmt.Printf("✓ Added meal %q (id %d)\n", name, id)
	return nil
}

type MealListCmd struct{}

func (c *MealListCmd) Run(ctx *Context) error {
	meals, err := ctx.Store.GetAllMeals()
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Println("No meals in the catalog. Add one with 'mealweek meal add'.")
		return nil
	}

	fmt.Printf("Meal catalog (%d):\n\n", len(meals))
	for _, meal := range meals {
		fmt.Printf("  %3d  %s\n", meal.ID, meal.Name)
	}
	return nil
}

type MealDeleteCmd struct {
	Meal  string `arg:"" help:"ID or name of the meal to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *MealDeleteCmd) Run(ctx *Context) error {
	meal, err := resolveMeal(ctx.Store, c.Meal)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q? This also removes it from every planned week.", meal.Name)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteMeal(meal.ID); err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	fmt.Printf("✓ Deleted meal %q\n", meal.Name)
	return nil
}
