package events

import (
	"context"
	"sync"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

const subscriberBuffer = 64

// Hub fans events out to in-process subscribers such as HTTP streams.
// A subscriber that falls behind loses events instead of blocking writers.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan entities.ChangeEvent]struct{}
}

var _ interfaces.IEventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: make(map[chan entities.ChangeEvent]struct{})}
}

func (h *Hub) Subscribe() chan entities.ChangeEvent {
	ch := make(chan entities.ChangeEvent, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan entities.ChangeEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Publish(_ context.Context, ev entities.ChangeEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}
