package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"mealweek/internal/calendar"
	"mealweek/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case statePicker:
		content = m.form.View()
	case stateConfirmRemove:
		content = m.viewConfirmRemove()
	default:
		content = m.viewWeek()
	}

	sections := []string{m.viewHeader(), content}
	if m.plan.Err != "" {
		sections = append(sections, dangerStyle.Render(m.plan.Err+" (esc to dismiss)"))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	label := calendar.WeekLabel(m.plan.WeekStart)
	if m.plan.IsLoading {
		label = m.spin.View() + " " + label
	}
	return headerStyle.Render(label)
}

func (m Model) viewWeek() string {
	if m.plan.IsLoading && len(m.plan.WeekDays) == 0 {
		return m.spin.View() + " Loading..."
	}

	rows := make([]string, 0, len(m.plan.WeekDays))
	for dayIdx, day := range m.plan.WeekDays {
		rows = append(rows, m.viewDay(dayIdx, day))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewDay(dayIdx int, day models.DayWithMeals) string {
	label := day.Date.Format("Mon Jan 2")
	switch {
	case day.IsToday:
		label = todayStyle.Render(label + " ●")
	case day.IsPast:
		label = pastStyle.Render(label)
	}
	label = lipgloss.NewStyle().Width(14).Render(label)

	cells := make([]string, 0, 3)
	for slotIdx, slot := range models.SlotTypes() {
		cells = append(cells, m.viewSlot(dayIdx, slotIdx, slot, day))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m Model) viewSlot(dayIdx, slotIdx int, slot models.SlotType, day models.DayWithMeals) string {
	meal := day.Slots[slot]
	text := fmt.Sprintf("%s: —", slot.DisplayName())
	if meal != nil {
		text = fmt.Sprintf("%s: %s", slot.DisplayName(), meal.Name)
	}

	if dayIdx == m.cursorDay && slotIdx == m.cursorSlot {
		return cursorStyle.Render(text)
	}
	if meal == nil {
		return emptySlotStyle.Render(text)
	}
	if day.IsPast {
		return pastStyle.Padding(0, 1).Render(text)
	}
	return slotStyle.Render(text)
}

func (m Model) viewConfirmRemove() string {
	req := m.plan.RemovalRequest
	if req == nil {
		return m.viewWeek()
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Remove %s from %s on %s?",
				req.MealName, req.Slot.DisplayName(), calendar.FormatDate(req.Date))),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
