// Package tui renders the weekly plan as an interactive terminal grid on top
// of the planner. All mutations go through planner intents; the view only
// reacts to published state snapshots.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"mealweek/internal/models"
	"mealweek/internal/planner"
)

type sessionState int

const (
	stateWeek sessionState = iota
	statePicker
	stateConfirmRemove
)

// stateMsg carries a planner snapshot into the update loop.
type stateMsg planner.State

type Model struct {
	planner *planner.Planner
	state   sessionState
	keys    KeyMap
	help    help.Model
	spin    spinner.Model

	plan       planner.State
	cursorDay  int
	cursorSlot int

	form       *huh.Form
	pickedMeal int64

	quitting bool
	width    int
	height   int
}

func NewModel(p *planner.Planner) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		planner: p,
		state:   stateWeek,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spin:    sp,
		plan:    p.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForUpdate(m.planner))
}

// waitForUpdate blocks on the planner's update channel and forwards the next
// snapshot as a message.
func waitForUpdate(p *planner.Planner) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-p.Updates())
	}
}

// cursorDate returns the date under the cursor, or false while the week is
// still loading.
func (m Model) cursorDate() (models.DayWithMeals, bool) {
	if m.cursorDay >= len(m.plan.WeekDays) {
		return models.DayWithMeals{}, false
	}
	return m.plan.WeekDays[m.cursorDay], true
}

func (m Model) cursorSlotType() models.SlotType {
	return models.SlotTypes()[m.cursorSlot]
}

// buildPicker creates the meal selection form for the slot under the cursor.
func (m *Model) buildPicker() {
	options := make([]huh.Option[int64], 0, len(m.plan.AvailableMeals))
	for _, meal := range m.plan.AvailableMeals {
		options = append(options, huh.NewOption(meal.Name, meal.ID))
	}

	m.pickedMeal = 0
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Choose a meal").
				Options(options...).
				Value(&m.pickedMeal),
		),
	)
}

func (m Model) mealByID(id int64) (models.Meal, bool) {
	for _, meal := range m.plan.AvailableMeals {
		if meal.ID == id {
			return meal, true
		}
	}
	return models.Meal{}, false
}
