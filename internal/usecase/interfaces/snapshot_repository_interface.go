package interfaces

import (
	"context"

	"marcenaria_gestao/internal/domain/entities"
)

// ISnapshotRepository persists the whole store content.
//
// Load returns an empty snapshot (Len() == 0) when nothing was saved yet.
type ISnapshotRepository interface {
	Save(ctx context.Context, snap entities.Snapshot) error
	Load(ctx context.Context) (entities.Snapshot, error)
}
