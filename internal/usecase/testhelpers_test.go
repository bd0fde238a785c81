package usecase

import (
	"context"
	"time"

	"marcenaria_gestao/internal/adapter/persistence/memory"
	"marcenaria_gestao/internal/domain/entities"
)

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestStore() *memory.EntityStore {
	return memory.NewEntityStore(
		memory.WithClock(func() time.Time { return fixedNow }),
		memory.WithIDSeed(100),
	)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	events []entities.ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev entities.ChangeEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func ptr[T any](v T) *T { return &v }
