package storage

import (
	"context"
	"sync"

	"mealweek/internal/logger"
)

// hub fans write notifications out to live-query subscribers. Both backend
// wrappers broadcast after every successful write.
type hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[chan struct{}]struct{})}
}

// subscribe registers a change listener that is removed when ctx ends.
func (h *hub) subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}()

	return ch
}

// broadcast signals every listener without blocking. A listener with a
// pending signal is left alone; one signal is enough to trigger a re-query.
func (h *hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// observe emits the current result of query immediately and again after every
// broadcast until ctx is canceled. A failed re-query is logged and skipped,
// leaving the previous emission in place.
func observe[T any](ctx context.Context, h *hub, query func() ([]T, error)) <-chan []T {
	out := make(chan []T, 1)
	changes := h.subscribe(ctx)

	go func() {
		defer close(out)
		emit := func() {
			items, err := query()
			if err != nil {
				logger.Warn("Live query failed", "error", err)
				return
			}
			select {
			case out <- items:
			case <-ctx.Done():
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				emit()
			}
		}
	}()

	return out
}
