package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	request "marcenaria_gestao/internal/adapter/http/dto/request"
	"marcenaria_gestao/internal/adapter/http/handlers"
	"marcenaria_gestao/internal/adapter/http/routes"
	"marcenaria_gestao/internal/adapter/persistence/memory"
	"marcenaria_gestao/internal/adapter/persistence/repository"
	"marcenaria_gestao/internal/config"
	"marcenaria_gestao/internal/infrastructure/database"
	"marcenaria_gestao/internal/infrastructure/events"
	"marcenaria_gestao/internal/infrastructure/scheduler"
	"marcenaria_gestao/internal/infrastructure/seed"
	"marcenaria_gestao/internal/usecase"
	"marcenaria_gestao/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

const shutdownTimeout = 15 * time.Second

// @title           Marcenaria Gestao API
// @version         1.0
// @description     Management backend of a woodworking shop: requests, projects, teams, fleet, warehouse orders and logistics.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		log.Fatalf("[api] %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := request.RegisterValidations(); err != nil {
		return fmt.Errorf("register validations: %w", err)
	}

	store := memory.NewEntityStore(memory.WithHistoryLimit(cfg.HistoryLimit))

	snapshotRepo, err := newSnapshotRepository(ctx, cfg)
	if err != nil {
		return err
	}

	hub := events.NewHub()
	publisher := events.NewMultiPublisher().
		Add("log", events.LogPublisher{}).
		Add("stream", hub)
	if cfg.EventsEnabled() {
		rdb, err := events.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		publisher.Add("redis", events.NewRedisPublisher(rdb, cfg.EventsChannel))
		log.Printf("[api] redis events enabled channel=%s", cfg.EventsChannel)
	}

	var seedFn usecase.SeedFunc
	if cfg.SeedEnabled {
		seedFn = seed.Load
	}
	snapshots := usecase.NewSnapshotUseCase(store, snapshotRepo, seedFn, publisher)
	source, err := snapshots.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap store: %w", err)
	}
	log.Printf("[api] store ready source=%s", source)

	vehicles := usecase.NewVehicleUseCase(store, publisher)
	router := routes.NewRouter(cfg, routes.Handlers{
		Requests:     handlers.NewRequestHandler(usecase.NewRequestUseCase(store, publisher)),
		Projects:     handlers.NewProjectHandler(usecase.NewProjectUseCase(store, publisher)),
		Teams:        handlers.NewTeamHandler(usecase.NewTeamUseCase(store, publisher)),
		Vehicles:     handlers.NewVehicleHandler(vehicles, cfg.MaintenanceWindowDays),
		SupplyOrders: handlers.NewSupplyOrderHandler(usecase.NewSupplyOrderUseCase(store, publisher)),
		Logistics:    handlers.NewLogisticsHandler(usecase.NewLogisticsUseCase(store, publisher)),
		Dashboard:    handlers.NewDashboardHandler(usecase.NewDashboardUseCase(store, cfg.MaintenanceWindowDays)),
		Admin:        handlers.NewAdminHandler(snapshots),
		Events:       handlers.NewEventsHandler(hub),
	})

	jobs, err := scheduler.New(scheduler.Config{
		SnapshotInterval:      cfg.SnapshotInterval,
		MaintenanceWindowDays: cfg.MaintenanceWindowDays,
	}, snapshots, vehicles)
	if err != nil {
		return err
	}
	jobs.Start()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// event streams end with the process context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[api] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("startup the application: %w", err)
		}
	case <-ctx.Done():
		log.Printf("[api] shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] http shutdown err=%v", err)
	}
	if err := jobs.Shutdown(); err != nil {
		log.Printf("[api] scheduler shutdown err=%v", err)
	}
	if snapshots.Enabled() {
		if _, err := snapshots.Persist(shutdownCtx); err != nil {
			log.Printf("[api] final snapshot failed err=%v", err)
		}
	}
	return nil
}

// newSnapshotRepository returns nil when SNAPSHOTS_TABLE is unset. The table
// is created on demand against local endpoints only.
func newSnapshotRepository(ctx context.Context, cfg config.Config) (interfaces.ISnapshotRepository, error) {
	if !cfg.SnapshotsEnabled() {
		log.Printf("[api] snapshots disabled")
		return nil, nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	repo := repository.NewSnapshotDynamoRepository(ddb, cfg.SnapshotsTable)
	if cfg.DynamoDBEndpoint != "" {
		if err := repo.EnsureTable(ctx); err != nil {
			return nil, err
		}
	}
	log.Printf("[api] snapshots enabled table=%s", cfg.SnapshotsTable)
	return repo, nil
}
