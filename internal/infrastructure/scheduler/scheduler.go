// Package scheduler runs the background jobs of the API: periodic store
// snapshots and the daily maintenance reminder.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/go-co-op/gocron/v2"
)

const jobTimeout = 30 * time.Second

type snapshotPersister interface {
	Persist(ctx context.Context) (int, error)
	Enabled() bool
}

type maintenanceChecker interface {
	MaintenanceDue(ctx context.Context, days int) ([]entities.Vehicle, error)
}

type Config struct {
	SnapshotInterval      time.Duration
	MaintenanceWindowDays int
	// MaintenanceCheckAt is the daily run time of the maintenance reminder,
	// in the scheduler location.
	MaintenanceCheckAt gocron.AtTime
}

type Scheduler struct {
	inner gocron.Scheduler
}

// New registers the jobs without starting them. The snapshot job is only
// added when persistence is enabled and the interval is positive.
func New(cfg Config, snapshots snapshotPersister, vehicles maintenanceChecker, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	inner, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	if snapshots != nil && snapshots.Enabled() && cfg.SnapshotInterval > 0 {
		j, err := inner.NewJob(
			gocron.DurationJob(cfg.SnapshotInterval),
			gocron.NewTask(func() { persistSnapshot(snapshots) }),
			gocron.WithName("snapshot"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("register snapshot job: %w", err)
		}
		log.Printf("[scheduler] job registered name=%s id=%s every=%s", j.Name(), j.ID(), cfg.SnapshotInterval)
	}

	if vehicles != nil {
		at := cfg.MaintenanceCheckAt
		if at == nil {
			at = gocron.NewAtTime(7, 0, 0)
		}
		j, err := inner.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(at)),
			gocron.NewTask(func() { remindMaintenance(vehicles, cfg.MaintenanceWindowDays) }),
			gocron.WithName("maintenance-due"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("register maintenance job: %w", err)
		}
		log.Printf("[scheduler] job registered name=%s id=%s", j.Name(), j.ID())
	}

	return &Scheduler{inner: inner}, nil
}

func (s *Scheduler) Start() {
	s.inner.Start()
	log.Printf("[scheduler] started jobs=%d", len(s.inner.Jobs()))
}

func (s *Scheduler) Jobs() []gocron.Job {
	return s.inner.Jobs()
}

// Shutdown stops the scheduler and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	return s.inner.Shutdown()
}

func persistSnapshot(snapshots snapshotPersister) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := snapshots.Persist(ctx)
	if err != nil {
		log.Printf("[scheduler][snapshot] persist failed err=%v", err)
		return
	}
	log.Printf("[scheduler][snapshot] persist success records=%d", n)
}

func remindMaintenance(vehicles maintenanceChecker, days int) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	due, err := vehicles.MaintenanceDue(ctx, days)
	if err != nil {
		log.Printf("[scheduler][maintenance] check failed err=%v", err)
		return
	}
	for _, v := range due {
		log.Printf("[scheduler][maintenance] vehicle due id=%s plate=%s date=%s",
			v.ID, v.Plate, v.NextMaintenanceDate.Format(time.DateOnly))
	}
	log.Printf("[scheduler][maintenance] check done due=%d window_days=%d", len(due), days)
}
