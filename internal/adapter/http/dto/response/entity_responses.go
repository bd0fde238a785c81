package response

import (
	"time"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase"
)

const dateLayout = time.DateOnly

// formatDate renders calendar dates; zero dates become empty strings.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewList[E any, T any](items []E, convert func(E) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, convert(it))
	}
	return ListResponse[T]{Items: out, Total: len(out)}
}

type RequestResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	TeamID      string    `json:"team_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Deadline    string    `json:"deadline,omitempty"`
	Status      string    `json:"status"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRequest(r entities.Request) RequestResponse {
	attachments := r.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return RequestResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		TeamID:      r.TeamID,
		Type:        r.Type,
		Description: r.Description,
		Priority:    string(r.Priority),
		Deadline:    formatDate(r.Deadline),
		Status:      string(r.Status),
		Attachments: attachments,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type ProjectUpdateResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
}

type ProjectResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Client          string                  `json:"client"`
	Address         string                  `json:"address"`
	Status          string                  `json:"status"`
	TeamIDs         []string                `json:"team_ids"`
	StartDate       string                  `json:"start_date,omitempty"`
	ExpectedEndDate string                  `json:"expected_end_date,omitempty"`
	Description     string                  `json:"description"`
	Updates         []ProjectUpdateResponse `json:"updates"`
}

func FromProject(p entities.Project) ProjectResponse {
	teamIDs := p.TeamIDs
	if teamIDs == nil {
		teamIDs = []string{}
	}
	updates := make([]ProjectUpdateResponse, 0, len(p.Updates))
	for _, u := range p.Updates {
		updates = append(updates, ProjectUpdateResponse{ID: u.ID, Date: u.Date, Author: u.Author, Description: u.Description})
	}
	return ProjectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Client:          p.Client,
		Address:         p.Address,
		Status:          string(p.Status),
		TeamIDs:         teamIDs,
		StartDate:       formatDate(p.StartDate),
		ExpectedEndDate: formatDate(p.ExpectedEndDate),
		Description:     p.Description,
		Updates:         updates,
	}
}

type TeamMemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

type TeamResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Color      string               `json:"color"`
	ProjectID  string               `json:"project_id,omitempty"`
	Leader     string               `json:"leader"`
	Members    int                  `json:"members"`
	MemberList []TeamMemberResponse `json:"member_list"`
	Specialty  string               `json:"specialty"`
}

func FromTeam(t entities.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(t.MemberList))
	for _, m := range t.MemberList {
		members = append(members, TeamMemberResponse(m))
	}
	return TeamResponse{
		ID:         t.ID,
		Name:       t.Name,
		Color:      t.Color,
		ProjectID:  t.ProjectID,
		Leader:     t.Leader,
		Members:    t.Members(),
		MemberList: members,
		Specialty:  t.Specialty,
	}
}

type MaintenanceRecordResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Odometer    int     `json:"odometer"`
}

type VehicleResponse struct {
	ID                  string                      `json:"id"`
	Plate               string                      `json:"plate"`
	Model               string                      `json:"model"`
	Brand               string                      `json:"brand"`
	Year                int                         `json:"year"`
	Color               string                      `json:"color"`
	Type                string                      `json:"type"`
	Status              string                      `json:"status"`
	TeamID              string                      `json:"team_id,omitempty"`
	Odometer            int                         `json:"odometer"`
	NextMaintenanceDate string                      `json:"next_maintenance_date,omitempty"`
	NextFuelDate        string                      `json:"next_fuel_date,omitempty"`
	MaintenanceHistory  []MaintenanceRecordResponse `json:"maintenance_history"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	history := make([]MaintenanceRecordResponse, 0, len(v.MaintenanceHistory))
	for _, m := range v.MaintenanceHistory {
		history = append(history, MaintenanceRecordResponse{
			ID:          m.ID,
			Date:        formatDate(m.Date),
			Type:        m.Type,
			Description: m.Description,
			Cost:        m.Cost,
			Odometer:    m.Odometer,
		})
	}
	return VehicleResponse{
		ID:                  v.ID,
		Plate:               v.Plate,
		Model:               v.Model,
		Brand:               v.Brand,
		Year:                v.Year,
		Color:               v.Color,
		Type:                v.Type,
		Status:              string(v.Status),
		TeamID:              v.TeamID,
		Odometer:            v.Odometer,
		NextMaintenanceDate: formatDate(v.NextMaintenanceDate),
		NextFuelDate:        formatDate(v.NextFuelDate),
		MaintenanceHistory:  history,
	}
}

type SupplyOrderResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	TeamID        string    `json:"team_id"`
	RequestedBy   string    `json:"requested_by"`
	Origin        string    `json:"origin"`
	Category      string    `json:"category"`
	Item          string    `json:"item"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	Reason        string    `json:"reason"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	EstimatedCost *float64  `json:"estimated_cost,omitempty"`
	MediatorNotes string    `json:"mediator_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromSupplyOrder(o entities.SupplyOrder) SupplyOrderResponse {
	return SupplyOrderResponse{
		ID:            o.ID,
		ProjectID:     o.ProjectID,
		TeamID:        o.TeamID,
		RequestedBy:   o.RequestedBy,
		Origin:        string(o.Origin),
		Category:      o.Category,
		Item:          o.Item,
		Quantity:      o.Quantity,
		Unit:          o.Unit,
		Reason:        o.Reason,
		Priority:      string(o.Priority),
		Status:        string(o.Status),
		EstimatedCost: o.EstimatedCost,
		MediatorNotes: o.MediatorNotes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type LogisticsItemResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

type LogisticsEventResponse struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Status        string                  `json:"status"`
	ProjectID     string                  `json:"project_id"`
	TeamID        string                  `json:"team_id,omitempty"`
	VehicleID     string                  `json:"vehicle_id,omitempty"`
	ScheduledDate time.Time               `json:"scheduled_date"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Items         []LogisticsItemResponse `json:"items"`
	CreatedBy     string                  `json:"created_by"`
	CreatedAt     time.Time               `json:"created_at"`
}

func FromLogisticsEvent(e entities.LogisticsEvent) LogisticsEventResponse {
	items := make([]LogisticsItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, LogisticsItemResponse(it))
	}
	return LogisticsEventResponse{
		ID:            e.ID,
		Type:          string(e.Type),
		Status:        string(e.Status),
		ProjectID:     e.ProjectID,
		TeamID:        e.TeamID,
		VehicleID:     e.VehicleID,
		ScheduledDate: e.ScheduledDate,
		Title:         e.Title,
		Description:   e.Description,
		Items:         items,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
	}
}

type TimelineDayResponse struct {
	Date   string                   `json:"date"`
	Events []LogisticsEventResponse `json:"events"`
}

func FromTimeline(days []usecase.TimelineDay) []TimelineDayResponse {
	out := make([]TimelineDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, TimelineDayResponse{
			Date:   d.Date,
			Events: NewList(d.Events, FromLogisticsEvent).Items,
		})
	}
	return out
}

type DashboardResponse struct {
	Requests               map[string]int           `json:"requests"`
	Projects               map[string]int           `json:"projects"`
	Vehicles               map[string]int           `json:"vehicles"`
	SupplyOrders           map[string]int           `json:"supply_orders"`
	LogisticsEvents        map[string]int           `json:"logistics_events"`
	Teams                  int                      `json:"teams"`
	TeamMembers            int                      `json:"team_members"`
	ActiveProjects         int                      `json:"active_projects"`
	PendingSupplyOrders    int                      `json:"pending_supply_orders"`
	UrgentRequests         int                      `json:"urgent_requests"`
	VehiclesDueMaintenance []VehicleResponse        `json:"vehicles_due_maintenance"`
	UpcomingEvents         []LogisticsEventResponse `json:"upcoming_events"`
	GeneratedAt            time.Time                `json:"generated_at"`
}

func stringKeys[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Requests:               stringKeys(s.Requests),
		Projects:               stringKeys(s.Projects),
		Vehicles:               stringKeys(s.Vehicles),
		SupplyOrders:           stringKeys(s.SupplyOrders),
		LogisticsEvents:        stringKeys(s.LogisticsEvents),
		Teams:                  s.Teams,
		TeamMembers:            s.TeamMembers,
		ActiveProjects:         s.ActiveProjects,
		PendingSupplyOrders:    s.PendingSupplyOrders,
		UrgentRequests:         s.UrgentRequests,
		VehiclesDueMaintenance: NewList(s.VehiclesDueMaintenance, FromVehicle).Items,
		UpcomingEvents:         NewList(s.UpcomingEvents, FromLogisticsEvent).Items,
		GeneratedAt:            s.GeneratedAt,
	}
}

type AdminResponse struct {
	Operation string `json:"operation"`
	Records   int    `json:"records"`
}

type PingResponse struct {
	Message string `json:"message"`
}
