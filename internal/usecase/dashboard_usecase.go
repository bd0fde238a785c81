package usecase

import (
	"context"
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

// DashboardSummary is the landing view of the management dashboard.
type DashboardSummary struct {
	Requests               map[entities.RequestStatus]int        `json:"requests"`
	Projects               map[entities.ProjectStatus]int        `json:"projects"`
	Vehicles               map[entities.VehicleStatus]int        `json:"vehicles"`
	SupplyOrders           map[entities.SupplyOrderStatus]int    `json:"supply_orders"`
	LogisticsEvents        map[entities.LogisticsEventStatus]int `json:"logistics_events"`
	Teams                  int                                   `json:"teams"`
	TeamMembers            int                                   `json:"team_members"`
	ActiveProjects         int                                   `json:"active_projects"`
	PendingSupplyOrders    int                                   `json:"pending_supply_orders"`
	UrgentRequests         int                                   `json:"urgent_requests"`
	VehiclesDueMaintenance []entities.Vehicle                    `json:"vehicles_due_maintenance"`
	UpcomingEvents         []entities.LogisticsEvent             `json:"upcoming_events"`
	GeneratedAt            time.Time                             `json:"generated_at"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	store             interfaces.IStateStore
	maintenanceWindow int
	now               func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

// NewDashboardUseCase builds the summary over store. maintenanceWindowDays
// controls how far ahead a vehicle counts as due.
func NewDashboardUseCase(store interfaces.IStateStore, maintenanceWindowDays int) *DashboardUseCase {
	return &DashboardUseCase{store: store, maintenanceWindow: maintenanceWindowDays, now: time.Now}
}

func (u *DashboardUseCase) Summary(_ context.Context) (DashboardSummary, error) {
	snap := u.store.Snapshot()
	now := u.now().UTC()

	s := DashboardSummary{
		Requests:        countBy(snap.Requests, func(r entities.Request) entities.RequestStatus { return r.Status }),
		Projects:        countBy(snap.Projects, func(p entities.Project) entities.ProjectStatus { return p.Status }),
		Vehicles:        countBy(snap.Vehicles, func(v entities.Vehicle) entities.VehicleStatus { return v.Status }),
		SupplyOrders:    countBy(snap.SupplyOrders, func(o entities.SupplyOrder) entities.SupplyOrderStatus { return o.Status }),
		LogisticsEvents: countBy(snap.LogisticsEvents, func(e entities.LogisticsEvent) entities.LogisticsEventStatus { return e.Status }),
		Teams:           len(snap.Teams),
		GeneratedAt:     now,
	}
	for _, t := range snap.Teams {
		s.TeamMembers += t.Members()
	}
	for _, r := range snap.Requests {
		if r.Priority == entities.PriorityUrgente && r.Status != entities.RequestStatusFinalizado {
			s.UrgentRequests++
		}
	}
	s.ActiveProjects = s.Projects[entities.ProjectStatusAtiva]
	s.PendingSupplyOrders = s.SupplyOrders[entities.SupplyOrderStatusPendente] + s.SupplyOrders[entities.SupplyOrderStatusEmAnalise]
	s.VehiclesDueMaintenance = vehiclesDue(snap.Vehicles, now.AddDate(0, 0, u.maintenanceWindow))

	today := now.Truncate(24 * time.Hour)
	s.UpcomingEvents = make([]entities.LogisticsEvent, 0)
	for _, day := range groupByDay(snap.LogisticsEvents) {
		for _, e := range day.Events {
			if e.Status == entities.LogisticsEventStatusAgendado && !e.ScheduledDate.Before(today) {
				s.UpcomingEvents = append(s.UpcomingEvents, e)
			}
		}
	}
	return s, nil
}

func countBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}
