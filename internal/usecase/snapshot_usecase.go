package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/infrastructure/metrics"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var ErrSnapshotsDisabled = errors.New("snapshots are disabled")

// SeedFunc returns the initial data set of a fresh store.
type SeedFunc func() (entities.Snapshot, error)

// BootstrapSource tells where the store content came from at startup.
type BootstrapSource string

const (
	BootstrapFromSnapshot BootstrapSource = "snapshot"
	BootstrapFromSeed     BootstrapSource = "seed"
	BootstrapEmpty        BootstrapSource = "empty"
)

type ISnapshotUseCase interface {
	Bootstrap(ctx context.Context) (BootstrapSource, error)
	Persist(ctx context.Context) (int, error)
	Reset(ctx context.Context) (int, error)
	Enabled() bool
}

// SnapshotUseCase moves the whole store content between memory, the snapshot
// repository and the seed data. repo may be nil, which disables persistence.
//
// Saves and resets are serialized: a save deletes stored items missing from
// its snapshot, so an older snapshot must never finish after a newer one.
type SnapshotUseCase struct {
	mu       sync.Mutex
	store    interfaces.IStateStore
	repo     interfaces.ISnapshotRepository
	seed     SeedFunc
	notifier changeNotifier
}

var _ ISnapshotUseCase = (*SnapshotUseCase)(nil)

// NewSnapshotUseCase wires the store to its persistence. A nil seed starts
// from an empty store.
func NewSnapshotUseCase(store interfaces.IStateStore, repo interfaces.ISnapshotRepository, seed SeedFunc, publisher interfaces.IEventPublisher) *SnapshotUseCase {
	return &SnapshotUseCase{store: store, repo: repo, seed: seed, notifier: newChangeNotifier(publisher)}
}

func (u *SnapshotUseCase) Enabled() bool { return u.repo != nil }

// Bootstrap fills the store at startup: the last saved snapshot wins over
// the seed data.
func (u *SnapshotUseCase) Bootstrap(ctx context.Context) (BootstrapSource, error) {
	if u.repo != nil {
		started := time.Now()
		snap, err := u.repo.Load(ctx)
		metrics.ObserveSnapshot("load", started, err)
		if err != nil {
			return "", fmt.Errorf("load snapshot: %w", err)
		}
		if snap.Len() > 0 {
			u.store.Restore(snap)
			metrics.SetRecordCounts(snap)
			log.Printf("[snapshot][usecase] bootstrap from snapshot records=%d", snap.Len())
			return BootstrapFromSnapshot, nil
		}
	}

	if u.seed == nil {
		log.Printf("[snapshot][usecase] bootstrap empty")
		metrics.SetRecordCounts(entities.Snapshot{})
		return BootstrapEmpty, nil
	}
	snap, err := u.seed()
	if err != nil {
		return "", fmt.Errorf("load seed: %w", err)
	}
	u.store.Restore(snap)
	metrics.SetRecordCounts(snap)
	log.Printf("[snapshot][usecase] bootstrap from seed records=%d", snap.Len())
	return BootstrapFromSeed, nil
}

// Persist saves the current store content and returns how many records were
// written.
func (u *SnapshotUseCase) Persist(ctx context.Context) (int, error) {
	if u.repo == nil {
		return 0, ErrSnapshotsDisabled
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	snap := u.store.Snapshot()
	metrics.SetRecordCounts(snap)

	started := time.Now()
	err := u.repo.Save(ctx, snap)
	metrics.ObserveSnapshot("save", started, err)
	if err != nil {
		log.Printf("[snapshot][usecase] persist failed records=%d err=%v", snap.Len(), err)
		return 0, fmt.Errorf("save snapshot: %w", err)
	}
	log.Printf("[snapshot][usecase] persist success records=%d duration=%s", snap.Len(), time.Since(started))
	return snap.Len(), nil
}

// Reset replaces the store content with the seed data (or nothing).
func (u *SnapshotUseCase) Reset(ctx context.Context) (int, error) {
	snap := entities.Snapshot{}
	if u.seed != nil {
		var err error
		if snap, err = u.seed(); err != nil {
			return 0, fmt.Errorf("load seed: %w", err)
		}
	}
	u.mu.Lock()
	u.store.Restore(snap)
	u.mu.Unlock()
	metrics.SetRecordCounts(snap)
	for _, c := range []entities.Collection{
		entities.CollectionRequests, entities.CollectionProjects, entities.CollectionTeams,
		entities.CollectionVehicles, entities.CollectionSupplyOrders, entities.CollectionLogisticsEvents,
	} {
		u.notifier.changed(ctx, c, entities.OperationReset, "")
	}
	log.Printf("[snapshot][usecase] reset records=%d", snap.Len())
	return snap.Len(), nil
}
