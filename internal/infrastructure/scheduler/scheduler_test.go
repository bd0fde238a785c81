package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPersister struct {
	enabled bool
	calls   atomic.Int32
	err     error
}

func (p *countingPersister) Persist(context.Context) (int, error) {
	p.calls.Add(1)
	return 3, p.err
}

func (p *countingPersister) Enabled() bool { return p.enabled }

type stubVehicles struct {
	calls atomic.Int32
	days  atomic.Int32
}

func (s *stubVehicles) MaintenanceDue(_ context.Context, days int) ([]entities.Vehicle, error) {
	s.calls.Add(1)
	s.days.Store(int32(days))
	return []entities.Vehicle{{ID: "veh-1", Plate: "ABC1D23"}}, nil
}

func TestNew_RegistersJobs(t *testing.T) {
	t.Run("snapshot job only when enabled", func(t *testing.T) {
		s, err := New(Config{SnapshotInterval: time.Minute}, &countingPersister{enabled: false}, &stubVehicles{})
		require.NoError(t, err)
		defer s.Shutdown()

		jobs := s.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, "maintenance-due", jobs[0].Name())
	})

	t.Run("both jobs", func(t *testing.T) {
		s, err := New(Config{SnapshotInterval: time.Minute}, &countingPersister{enabled: true}, &stubVehicles{})
		require.NoError(t, err)
		defer s.Shutdown()

		names := []string{}
		for _, j := range s.Jobs() {
			names = append(names, j.Name())
		}
		assert.ElementsMatch(t, []string{"snapshot", "maintenance-due"}, names)
	})

	t.Run("zero interval disables snapshots", func(t *testing.T) {
		s, err := New(Config{}, &countingPersister{enabled: true}, nil)
		require.NoError(t, err)
		defer s.Shutdown()
		assert.Empty(t, s.Jobs())
	})
}

func TestScheduler_RunsSnapshotJob(t *testing.T) {
	p := &countingPersister{enabled: true}
	s, err := New(Config{SnapshotInterval: 20 * time.Millisecond}, p, nil)
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return p.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Shutdown())
}

func TestJobFunctions(t *testing.T) {
	t.Run("persist failure is swallowed", func(t *testing.T) {
		p := &countingPersister{enabled: true, err: errors.New("dynamo down")}
		persistSnapshot(p)
		assert.Equal(t, int32(1), p.calls.Load())
	})

	t.Run("maintenance window is forwarded", func(t *testing.T) {
		v := &stubVehicles{}
		remindMaintenance(v, 7)
		assert.Equal(t, int32(1), v.calls.Load())
		assert.Equal(t, int32(7), v.days.Load())
	})
}
