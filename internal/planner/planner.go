// Package planner holds the week-plan aggregator: it combines the live meal
// catalog and the scheduled meals of the currently selected week into a
// renderable state, and turns user intents into store writes with optimistic
// local updates. All intents are safe to call from any state; invalid ones
// are silent no-ops.
package planner

import (
	"context"
	"sync"
	"time"

	"mealweek/internal/calendar"
	"mealweek/internal/logger"
	"mealweek/internal/models"
	"mealweek/internal/storage"
)

type Planner struct {
	store storage.Provider
	today time.Time

	mu    sync.Mutex
	state State
	gen   int // bumped on week change; guards against stale schedule emissions

	meals      []models.Meal
	mealsReady bool
	sched      []models.ScheduledMeal
	schedReady bool

	resub   chan struct{}
	updates chan State
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Planner.
type Option func(*Planner)

// WithToday fixes the reference "today" date, used by tests and previews.
func WithToday(today time.Time) Option {
	return func(p *Planner) {
		p.today = today
	}
}

// New creates a planner anchored at the week containing today. Call Start to
// begin receiving live data.
func New(store storage.Provider, opts ...Option) *Planner {
	p := &Planner{
		store:   store,
		today:   time.Now(),
		resub:   make(chan struct{}, 1),
		updates: make(chan State, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.today = calendar.Truncate(p.today)
	p.state = State{
		WeekStart: calendar.WeekStart(p.today),
		IsLoading: true,
	}
	return p
}

// Today returns the fixed reference date of this planner.
func (p *Planner) Today() time.Time {
	return p.today
}

// Start launches the reactive loop. It runs until ctx ends or Stop is called.
func (p *Planner) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx)
}

// Stop terminates the reactive loop and waits for it to exit.
func (p *Planner) Stop() {
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}
}

// State returns a snapshot of the current aggregator state.
func (p *Planner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.clone()
}

// Updates delivers state snapshots to the presentation layer. The channel
// holds only the latest state; intermediate snapshots may be dropped.
func (p *Planner) Updates() <-chan State {
	return p.updates
}

func (p *Planner) run(ctx context.Context) {
	defer close(p.done)

	meals := p.store.ObserveMeals(ctx)

	p.mu.Lock()
	start := p.state.WeekStart
	gen := p.gen
	p.mu.Unlock()

	schedCtx, cancelSched := context.WithCancel(ctx)
	sched := p.store.ObserveSchedule(schedCtx, start, calendar.WeekEnd(start))
	defer func() { cancelSched() }()

	for {
		select {
		case <-ctx.Done():
			return
		case ms, ok := <-meals:
			if !ok {
				return
			}
			p.applyMeals(ms)
		case es, ok := <-sched:
			if !ok {
				return
			}
			p.applySchedule(es, gen)
		case <-p.resub:
			// The week changed: drop the old subscription before its data
			// can reach the new week's state.
			cancelSched()
			p.mu.Lock()
			start = p.state.WeekStart
			gen = p.gen
			p.mu.Unlock()
			newCtx, newCancel := context.WithCancel(ctx)
			schedCtx, cancelSched = newCtx, newCancel
			sched = p.store.ObserveSchedule(schedCtx, start, calendar.WeekEnd(start))
		}
	}
}

func (p *Planner) applyMeals(meals []models.Meal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.meals = meals
	p.mealsReady = true
	if p.schedReady {
		p.recomputeLocked()
		p.publishLocked()
	}
}

func (p *Planner) applySchedule(entries []models.ScheduledMeal, gen int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// Emission from an abandoned week subscription.
		return
	}
	p.sched = entries
	p.schedReady = true
	if p.mealsReady {
		p.recomputeLocked()
		p.publishLocked()
	}
}

func (p *Planner) recomputeLocked() {
	p.state.AvailableMeals = p.meals
	p.state.WeekDays = BuildWeekDays(p.state.WeekStart, p.today, p.sched)
	p.state.IsLoading = false
}

// publishLocked pushes a snapshot onto the updates channel, replacing any
// unconsumed previous snapshot.
func (p *Planner) publishLocked() {
	st := p.state.clone()
	select {
	case p.updates <- st:
	default:
		select {
		case <-p.updates:
		default:
		}
		select {
		case p.updates <- st:
		default:
		}
	}
}

// SelectSlot opens the meal picker for a slot.
func (p *Planner) SelectSlot(date time.Time, slot models.SlotType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SelectedSlot = &models.SelectedSlot{Date: calendar.Truncate(date), Slot: slot}
	p.publishLocked()
}

// DismissPicker closes the meal picker without assigning.
func (p *Planner) DismissPicker() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SelectedSlot = nil
	p.publishLocked()
}

// AssignMeal assigns a meal to the selected slot. A no-op when no slot is
// selected. The slot is updated locally right away; the store's live stream
// reconciles afterwards.
func (p *Planner) AssignMeal(meal models.Meal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel := p.state.SelectedSlot
	if sel == nil {
		return
	}
	p.state.SelectedSlot = nil

	if err := p.store.UpsertScheduledMeal(meal.ID, sel.Date, sel.Slot); err != nil {
		logger.Error("Failed to assign meal", "meal", meal.Name, "date", calendar.FormatDate(sel.Date), "slot", sel.Slot, "error", err)
		p.state.Err = "Failed to assign " + meal.Name
		p.publishLocked()
		return
	}

	p.setSlotLocked(sel.Date, sel.Slot, &meal)
	p.publishLocked()
}

// RequestRemoveMeal stages a removal for confirmation. A no-op when the slot
// is already empty.
func (p *Planner) RequestRemoveMeal(date time.Time, slot models.SlotType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	meal := p.state.MealAt(date, slot)
	if meal == nil {
		return
	}
	p.state.RemovalRequest = &models.MealRemovalRequest{
		Date:     calendar.Truncate(date),
		Slot:     slot,
		MealName: meal.Name,
	}
	p.publishLocked()
}

// ConfirmRemoveMeal executes the staged removal. A no-op when nothing is
// staged.
func (p *Planner) ConfirmRemoveMeal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	req := p.state.RemovalRequest
	if req == nil {
		return
	}
	p.state.RemovalRequest = nil
	p.removeLocked(req.Date, req.Slot)
	p.publishLocked()
}

// DismissRemovalDialog cancels the staged removal without deleting.
func (p *Planner) DismissRemovalDialog() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.RemovalRequest = nil
	p.publishLocked()
}

// RemoveMeal deletes an assignment without the confirmation step. Safe to
// call on an empty slot; the store delete is idempotent.
func (p *Planner) RemoveMeal(date time.Time, slot models.SlotType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removeLocked(calendar.Truncate(date), slot)
	p.publishLocked()
}

func (p *Planner) removeLocked(date time.Time, slot models.SlotType) {
	if err := p.store.DeleteScheduledMeal(date, slot); err != nil {
		logger.Error("Failed to remove meal", "date", calendar.FormatDate(date), "slot", slot, "error", err)
		p.state.Err = "Failed to remove meal"
		return
	}
	p.setSlotLocked(date, slot, nil)
}

func (p *Planner) setSlotLocked(date time.Time, slot models.SlotType, meal *models.Meal) {
	for i, day := range p.state.WeekDays {
		if calendar.SameDate(day.Date, date) {
			p.state.WeekDays[i].Slots[slot] = meal
			return
		}
	}
}

// NavigateToWeek shifts the displayed week by offset weeks and reloads it.
func (p *Planner) NavigateToWeek(offset int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setWeekStartLocked(calendar.NavigateWeek(p.state.WeekStart, offset))
}

// GoToCurrentWeek jumps back to the week containing today. Strictly a no-op,
// including the loading flag, when that week is already displayed.
func (p *Planner) GoToCurrentWeek() {
	p.mu.Lock()
	defer p.mu.Unlock()
	current := calendar.WeekStart(p.today)
	if calendar.SameDate(p.state.WeekStart, current) {
		return
	}
	p.setWeekStartLocked(current)
}

func (p *Planner) setWeekStartLocked(weekStart time.Time) {
	p.state.WeekStart = weekStart
	p.state.IsLoading = true
	p.gen++
	p.schedReady = false
	p.publishLocked()

	select {
	case p.resub <- struct{}{}:
	default:
	}
}

// ClearError dismisses the one-shot error message.
func (p *Planner) ClearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Err == "" {
		return
	}
	p.state.Err = ""
	p.publishLocked()
}
