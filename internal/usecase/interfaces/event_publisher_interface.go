package interfaces

import (
	"context"

	"marcenaria_gestao/internal/domain/entities"
)

// IEventPublisher fans store change events out to interested consumers
// (dashboards, other services).
type IEventPublisher interface {
	Publish(ctx context.Context, ev entities.ChangeEvent) error
}
