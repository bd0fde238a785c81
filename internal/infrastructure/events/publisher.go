// Package events delivers entity store change events to logs, Redis
// subscribers and live HTTP streams.
package events

import (
	"context"
	"errors"
	"log"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/infrastructure/metrics"
	"marcenaria_gestao/internal/usecase/interfaces"
)

// LogPublisher writes every event to the process log.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, ev entities.ChangeEvent) error {
	log.Printf("[events][log] collection=%s operation=%s id=%s", ev.Collection, ev.Operation, ev.EntityID)
	return nil
}

type namedPublisher struct {
	name string
	pub  interfaces.IEventPublisher
}

// MultiPublisher hands each event to every registered publisher and joins
// their errors. One failing publisher does not stop the others.
type MultiPublisher struct {
	publishers []namedPublisher
}

var _ interfaces.IEventPublisher = (*MultiPublisher)(nil)

func NewMultiPublisher() *MultiPublisher {
	return &MultiPublisher{}
}

// Add registers pub under name, used as the metrics label.
func (m *MultiPublisher) Add(name string, pub interfaces.IEventPublisher) *MultiPublisher {
	m.publishers = append(m.publishers, namedPublisher{name: name, pub: pub})
	return m
}

func (m *MultiPublisher) Publish(ctx context.Context, ev entities.ChangeEvent) error {
	var errs []error
	for _, p := range m.publishers {
		err := p.pub.Publish(ctx, ev)
		metrics.RecordEventPublished(p.name, err)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
