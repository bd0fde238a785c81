// Package memory holds the entity store: the in-process source of truth for
// requests, projects, teams, vehicles, supply orders and logistics events.
package memory

import (
	"sync"
	"sync/atomic"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

const (
	prefixRequest        = "req"
	prefixProject        = "prj"
	prefixProjectUpdate  = "upd"
	prefixTeam           = "team"
	prefixTeamMember     = "mbr"
	prefixVehicle        = "veh"
	prefixMaintenance    = "mnt"
	prefixSupplyOrder    = "sup"
	prefixLogisticsEvent = "log"
)

// state is never modified after it is published. A mutation copies the
// struct, swaps in new slices for the collections it touches and publishes
// the copy.
type state struct {
	requests        []entities.Request
	projects        []entities.Project
	teams           []entities.Team
	vehicles        []entities.Vehicle
	supplyOrders    []entities.SupplyOrder
	logisticsEvents []entities.LogisticsEvent
}

// EntityStore owns the six collections.
//
// Concurrency model:
//   - writers are serialized by mu;
//   - readers load the current state without locking and always observe
//     either the previous or the next complete state.
//
// Unknown ids are an idempotent no-op: update/delete report found=false and
// leave every collection untouched.
type EntityStore struct {
	mu           sync.Mutex
	current      atomic.Pointer[state]
	clock        *clock
	ids          *idGenerator
	historyLimit int
}

type Option func(*EntityStore)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *EntityStore) { s.clock = newClock(now) }
}

// WithIDSeed fixes the starting value of the id counter.
func WithIDSeed(seed int64) Option {
	return func(s *EntityStore) { s.ids = newIDGenerator(seed) }
}

// WithHistoryLimit caps maintenance histories and project update logs to the
// newest n entries. Zero keeps them unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *EntityStore) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

var _ interfaces.IEntityStore = (*EntityStore)(nil)

func NewEntityStore(opts ...Option) *EntityStore {
	s := &EntityStore{clock: newClock(time.Now)}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = newIDGenerator(s.clock.now().UnixMilli())
	}
	s.current.Store(&state{})
	return s
}

func (s *EntityStore) load() *state {
	return s.current.Load()
}

// mutate applies fn to a copy of the current state under the writer lock.
// The copy is published only when fn reports a change.
func (s *EntityStore) mutate(fn func(next *state) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.current.Load()
	if !fn(&next) {
		return false
	}
	s.current.Store(&next)
	return true
}
