package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"mealweek/internal/planner"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.plan = planner.State(msg)
		// The store may have emptied the slot behind a pending dialog.
		if m.state == stateConfirmRemove && m.plan.RemovalRequest == nil {
			m.state = stateWeek
		}
		return m, waitForUpdate(m.planner)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	switch m.state {
	case statePicker:
		return m.updatePicker(msg)
	case stateConfirmRemove:
		return m.updateConfirmRemove(msg)
	default:
		return m.updateWeek(msg)
	}
}

func (m Model) updateWeek(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursorDay > 0 {
			m.cursorDay--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursorDay < 6 {
			m.cursorDay++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.cursorSlot > 0 {
			m.cursorSlot--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.cursorSlot < 2 {
			m.cursorSlot++
		}

	case key.Matches(keyMsg, m.keys.PrevWeek):
		m.planner.NavigateToWeek(-1)

	case key.Matches(keyMsg, m.keys.NextWeek):
		m.planner.NavigateToWeek(1)

	case key.Matches(keyMsg, m.keys.Today):
		m.planner.GoToCurrentWeek()

	case key.Matches(keyMsg, m.keys.Assign):
		day, ok := m.cursorDate()
		if !ok || len(m.plan.AvailableMeals) == 0 {
			return m, nil
		}
		m.planner.SelectSlot(day.Date, m.cursorSlotType())
		m.buildPicker()
		m.state = statePicker
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Remove):
		day, ok := m.cursorDate()
		if !ok {
			return m, nil
		}
		m.planner.RequestRemoveMeal(day.Date, m.cursorSlotType())
		if m.planner.State().RemovalRequest != nil {
			m.state = stateConfirmRemove
		}

	case key.Matches(keyMsg, m.keys.Dismiss):
		m.planner.ClearError()
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.planner.DismissPicker()
		m.state = stateWeek
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if meal, ok := m.mealByID(m.pickedMeal); ok {
			m.planner.AssignMeal(meal)
		} else {
			m.planner.DismissPicker()
		}
		m.state = stateWeek
	case huh.StateAborted:
		m.planner.DismissPicker()
		m.state = stateWeek
	}
	return m, cmd
}

func (m Model) updateConfirmRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.planner.ConfirmRemoveMeal()
		m.state = stateWeek
	case "n", "N", "esc":
		m.planner.DismissRemovalDialog()
		m.state = stateWeek
	}
	return m, nil
}
