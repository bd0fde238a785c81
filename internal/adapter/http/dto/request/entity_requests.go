package request

import (
	"strings"

	"marcenaria_gestao/internal/domain/entities"
)

type RequestCreate struct {
	ProjectID   string   `json:"project_id"`
	TeamID      string   `json:"team_id"`
	Type        string   `json:"type"`
	Description string   `json:"description" binding:"required"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=baixa media alta urgente"`
	Deadline    string   `json:"deadline" binding:"omitempty,isodate"`
	Status      string   `json:"status"`
	Attachments []string `json:"attachments"`
}

func (r RequestCreate) ToEntity() (entities.NewRequest, error) {
	deadline, err := parseOptionalDate(r.Deadline)
	if err != nil {
		return entities.NewRequest{}, err
	}
	return entities.NewRequest{
		ProjectID:   strings.TrimSpace(r.ProjectID),
		TeamID:      strings.TrimSpace(r.TeamID),
		Type:        strings.TrimSpace(r.Type),
		Description: r.Description,
		Priority:    entities.Priority(r.Priority),
		Deadline:    deadline,
		Status:      entities.RequestStatus(r.Status),
		Attachments: r.Attachments,
	}, nil
}

type RequestPatch struct {
	ProjectID   *string  `json:"project_id"`
	TeamID      *string  `json:"team_id"`
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=baixa media alta urgente"`
	Deadline    *string  `json:"deadline" binding:"omitempty,isodate"`
	Status      *string  `json:"status"`
	Attachments []string `json:"attachments"`
}

func (r RequestPatch) ToEntity() (entities.RequestPatch, error) {
	deadline, err := parseDatePtr(r.Deadline)
	if err != nil {
		return entities.RequestPatch{}, err
	}
	p := entities.RequestPatch{
		ProjectID:   trimPtr(r.ProjectID),
		TeamID:      trimPtr(r.TeamID),
		Type:        trimPtr(r.Type),
		Description: r.Description,
		Deadline:    deadline,
		Attachments: r.Attachments,
	}
	if r.Priority != nil {
		v := entities.Priority(*r.Priority)
		p.Priority = &v
	}
	if r.Status != nil {
		v := entities.RequestStatus(*r.Status)
		p.Status = &v
	}
	return p, nil
}

type ProjectCreate struct {
	Name            string   `json:"name" binding:"required"`
	Client          string   `json:"client"`
	Address         string   `json:"address"`
	Status          string   `json:"status"`
	TeamIDs         []string `json:"team_ids"`
	StartDate       string   `json:"start_date" binding:"omitempty,isodate"`
	ExpectedEndDate string   `json:"expected_end_date" binding:"omitempty,isodate"`
	Description     string   `json:"description"`
}

func (r ProjectCreate) ToEntity() (entities.NewProject, error) {
	start, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return entities.NewProject{}, err
	}
	end, err := parseOptionalDate(r.ExpectedEndDate)
	if err != nil {
		return entities.NewProject{}, err
	}
	return entities.NewProject{
		Name:            r.Name,
		Client:          strings.TrimSpace(r.Client),
		Address:         strings.TrimSpace(r.Address),
		Status:          entities.ProjectStatus(r.Status),
		TeamIDs:         r.TeamIDs,
		StartDate:       start,
		ExpectedEndDate: end,
		Description:     r.Description,
	}, nil
}

type ProjectPatch struct {
	Name            *string  `json:"name"`
	Client          *string  `json:"client"`
	Address         *string  `json:"address"`
	Status          *string  `json:"status"`
	TeamIDs         []string `json:"team_ids"`
	StartDate       *string  `json:"start_date" binding:"omitempty,isodate"`
	ExpectedEndDate *string  `json:"expected_end_date" binding:"omitempty,isodate"`
	Description     *string  `json:"description"`
}

func (r ProjectPatch) ToEntity() (entities.ProjectPatch, error) {
	start, err := parseDatePtr(r.StartDate)
	if err != nil {
		return entities.ProjectPatch{}, err
	}
	end, err := parseDatePtr(r.ExpectedEndDate)
	if err != nil {
		return entities.ProjectPatch{}, err
	}
	p := entities.ProjectPatch{
		Name:            r.Name,
		Client:          trimPtr(r.Client),
		Address:         trimPtr(r.Address),
		TeamIDs:         r.TeamIDs,
		StartDate:       start,
		ExpectedEndDate: end,
		Description:     r.Description,
	}
	if r.Status != nil {
		v := entities.ProjectStatus(*r.Status)
		p.Status = &v
	}
	return p, nil
}

type ProjectUpdateCreate struct {
	Author      string `json:"author"`
	Description string `json:"description" binding:"required"`
}

func (r ProjectUpdateCreate) ToEntity() entities.NewProjectUpdate {
	return entities.NewProjectUpdate{Author: strings.TrimSpace(r.Author), Description: r.Description}
}

type TeamMemberCreate struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

func (r TeamMemberCreate) ToEntity() entities.NewTeamMember {
	return entities.NewTeamMember{
		Name:  strings.TrimSpace(r.Name),
		Role:  strings.TrimSpace(r.Role),
		Phone: strings.TrimSpace(r.Phone),
	}
}

type TeamCreate struct {
	Name       string             `json:"name" binding:"required"`
	Color      string             `json:"color" binding:"omitempty,hexcolor"`
	ProjectID  string             `json:"project_id"`
	Leader     string             `json:"leader"`
	MemberList []TeamMemberCreate `json:"member_list" binding:"omitempty,dive"`
	Specialty  string             `json:"specialty"`
}

func (r TeamCreate) ToEntity() entities.NewTeam {
	members := make([]entities.TeamMember, 0, len(r.MemberList))
	for _, m := range r.MemberList {
		nm := m.ToEntity()
		members = append(members, entities.TeamMember{Name: nm.Name, Role: nm.Role, Phone: nm.Phone})
	}
	return entities.NewTeam{
		Name:       r.Name,
		Color:      r.Color,
		ProjectID:  strings.TrimSpace(r.ProjectID),
		Leader:     strings.TrimSpace(r.Leader),
		MemberList: members,
		Specialty:  strings.TrimSpace(r.Specialty),
	}
}

type TeamPatch struct {
	Name      *string `json:"name"`
	Color     *string `json:"color" binding:"omitempty,hexcolor"`
	ProjectID *string `json:"project_id"`
	Leader    *string `json:"leader"`
	Specialty *string `json:"specialty"`
}

func (r TeamPatch) ToEntity() entities.TeamPatch {
	return entities.TeamPatch{
		Name:      r.Name,
		Color:     r.Color,
		ProjectID: trimPtr(r.ProjectID),
		Leader:    trimPtr(r.Leader),
		Specialty: trimPtr(r.Specialty),
	}
}

type VehicleCreate struct {
	Plate               string `json:"plate" binding:"required,plate"`
	Model               string `json:"model"`
	Brand               string `json:"brand"`
	Year                int    `json:"year" binding:"omitempty,gte=1950,lte=2100"`
	Color               string `json:"color"`
	Type                string `json:"type"`
	Status              string `json:"status"`
	TeamID              string `json:"team_id"`
	Odometer            int    `json:"odometer" binding:"gte=0"`
	NextMaintenanceDate string `json:"next_maintenance_date" binding:"omitempty,isodate"`
	NextFuelDate        string `json:"next_fuel_date" binding:"omitempty,isodate"`
}

func (r VehicleCreate) ToEntity() (entities.NewVehicle, error) {
	maintenance, err := parseOptionalDate(r.NextMaintenanceDate)
	if err != nil {
		return entities.NewVehicle{}, err
	}
	fuel, err := parseOptionalDate(r.NextFuelDate)
	if err != nil {
		return entities.NewVehicle{}, err
	}
	return entities.NewVehicle{
		Plate:               normalizePlate(r.Plate),
		Model:               strings.TrimSpace(r.Model),
		Brand:               strings.TrimSpace(r.Brand),
		Year:                r.Year,
		Color:               strings.TrimSpace(r.Color),
		Type:                strings.TrimSpace(r.Type),
		Status:              entities.VehicleStatus(r.Status),
		TeamID:              strings.TrimSpace(r.TeamID),
		Odometer:            r.Odometer,
		NextMaintenanceDate: maintenance,
		NextFuelDate:        fuel,
	}, nil
}

type VehiclePatch struct {
	Plate               *string `json:"plate" binding:"omitempty,plate"`
	Model               *string `json:"model"`
	Brand               *string `json:"brand"`
	Year                *int    `json:"year" binding:"omitempty,gte=1950,lte=2100"`
	Color               *string `json:"color"`
	Type                *string `json:"type"`
	Status              *string `json:"status"`
	TeamID              *string `json:"team_id"`
	Odometer            *int    `json:"odometer" binding:"omitempty,gte=0"`
	NextMaintenanceDate *string `json:"next_maintenance_date" binding:"omitempty,isodate"`
	NextFuelDate        *string `json:"next_fuel_date" binding:"omitempty,isodate"`
}

func (r VehiclePatch) ToEntity() (entities.VehiclePatch, error) {
	maintenance, err := parseDatePtr(r.NextMaintenanceDate)
	if err != nil {
		return entities.VehiclePatch{}, err
	}
	fuel, err := parseDatePtr(r.NextFuelDate)
	if err != nil {
		return entities.VehiclePatch{}, err
	}
	p := entities.VehiclePatch{
		Model:               trimPtr(r.Model),
		Brand:               trimPtr(r.Brand),
		Year:                r.Year,
		Color:               trimPtr(r.Color),
		Type:                trimPtr(r.Type),
		TeamID:              trimPtr(r.TeamID),
		Odometer:            r.Odometer,
		NextMaintenanceDate: maintenance,
		NextFuelDate:        fuel,
	}
	if r.Plate != nil {
		v := normalizePlate(*r.Plate)
		p.Plate = &v
	}
	if r.Status != nil {
		v := entities.VehicleStatus(*r.Status)
		p.Status = &v
	}
	return p, nil
}

type MaintenanceRecordCreate struct {
	Date        string  `json:"date" binding:"omitempty,isodate"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Odometer    int     `json:"odometer" binding:"gte=0"`
}

func (r MaintenanceRecordCreate) ToEntity() (entities.NewMaintenanceRecord, error) {
	date, err := parseOptionalDate(r.Date)
	if err != nil {
		return entities.NewMaintenanceRecord{}, err
	}
	return entities.NewMaintenanceRecord{
		Date:        date,
		Type:        r.Type,
		Description: strings.TrimSpace(r.Description),
		Cost:        r.Cost,
		Odometer:    r.Odometer,
	}, nil
}

type SupplyOrderCreate struct {
	ProjectID     string   `json:"project_id"`
	TeamID        string   `json:"team_id"`
	RequestedBy   string   `json:"requested_by"`
	Origin        string   `json:"origin" binding:"required,oneof=producao obra"`
	Category      string   `json:"category"`
	Item          string   `json:"item" binding:"required"`
	Quantity      float64  `json:"quantity" binding:"required,gt=0"`
	Unit          string   `json:"unit"`
	Reason        string   `json:"reason"`
	Priority      string   `json:"priority" binding:"omitempty,oneof=baixa media alta urgente"`
	Status        string   `json:"status"`
	EstimatedCost *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	MediatorNotes string   `json:"mediator_notes"`
}

func (r SupplyOrderCreate) ToEntity() entities.NewSupplyOrder {
	return entities.NewSupplyOrder{
		ProjectID:     strings.TrimSpace(r.ProjectID),
		TeamID:        strings.TrimSpace(r.TeamID),
		RequestedBy:   strings.TrimSpace(r.RequestedBy),
		Origin:        entities.SupplyOrigin(r.Origin),
		Category:      strings.TrimSpace(r.Category),
		Item:          r.Item,
		Quantity:      r.Quantity,
		Unit:          strings.TrimSpace(r.Unit),
		Reason:        strings.TrimSpace(r.Reason),
		Priority:      entities.Priority(r.Priority),
		Status:        entities.SupplyOrderStatus(r.Status),
		EstimatedCost: r.EstimatedCost,
		MediatorNotes: strings.TrimSpace(r.MediatorNotes),
	}
}

type SupplyOrderPatch struct {
	ProjectID     *string  `json:"project_id"`
	TeamID        *string  `json:"team_id"`
	RequestedBy   *string  `json:"requested_by"`
	Origin        *string  `json:"origin" binding:"omitempty,oneof=producao obra"`
	Category      *string  `json:"category"`
	Item          *string  `json:"item"`
	Quantity      *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit          *string  `json:"unit"`
	Reason        *string  `json:"reason"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=baixa media alta urgente"`
	Status        *string  `json:"status"`
	EstimatedCost *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	MediatorNotes *string  `json:"mediator_notes"`
}

func (r SupplyOrderPatch) ToEntity() entities.SupplyOrderPatch {
	p := entities.SupplyOrderPatch{
		ProjectID:     trimPtr(r.ProjectID),
		TeamID:        trimPtr(r.TeamID),
		RequestedBy:   trimPtr(r.RequestedBy),
		Category:      trimPtr(r.Category),
		Item:          r.Item,
		Quantity:      r.Quantity,
		Unit:          trimPtr(r.Unit),
		Reason:        trimPtr(r.Reason),
		EstimatedCost: r.EstimatedCost,
		MediatorNotes: trimPtr(r.MediatorNotes),
	}
	if r.Origin != nil {
		v := entities.SupplyOrigin(*r.Origin)
		p.Origin = &v
	}
	if r.Priority != nil {
		v := entities.Priority(*r.Priority)
		p.Priority = &v
	}
	if r.Status != nil {
		v := entities.SupplyOrderStatus(*r.Status)
		p.Status = &v
	}
	return p
}

// SupplyOrderReview is the mediator decision on an order.
type SupplyOrderReview struct {
	Status        string   `json:"status" binding:"required"`
	EstimatedCost *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	MediatorNotes *string  `json:"mediator_notes"`
}

type LogisticsItem struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit"`
}

func toLogisticsItems(items []LogisticsItem) []entities.LogisticsItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LogisticsItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LogisticsItem{
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Unit:     strings.TrimSpace(it.Unit),
		})
	}
	return out
}

type LogisticsEventCreate struct {
	Type          string          `json:"type" binding:"required,oneof=carga descarga entrega retirada"`
	Status        string          `json:"status"`
	ProjectID     string          `json:"project_id"`
	TeamID        string          `json:"team_id"`
	VehicleID     string          `json:"vehicle_id"`
	ScheduledDate string          `json:"scheduled_date" binding:"required,isodate"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Items         []LogisticsItem `json:"items" binding:"omitempty,dive"`
	CreatedBy     string          `json:"created_by"`
}

func (r LogisticsEventCreate) ToEntity() (entities.NewLogisticsEvent, error) {
	scheduled, err := ParseDate(r.ScheduledDate)
	if err != nil {
		return entities.NewLogisticsEvent{}, err
	}
	return entities.NewLogisticsEvent{
		Type:          entities.LogisticsEventType(r.Type),
		Status:        entities.LogisticsEventStatus(r.Status),
		ProjectID:     strings.TrimSpace(r.ProjectID),
		TeamID:        strings.TrimSpace(r.TeamID),
		VehicleID:     strings.TrimSpace(r.VehicleID),
		ScheduledDate: scheduled,
		Title:         r.Title,
		Description:   r.Description,
		Items:         toLogisticsItems(r.Items),
		CreatedBy:     strings.TrimSpace(r.CreatedBy),
	}, nil
}

type LogisticsEventPatch struct {
	Type          *string         `json:"type" binding:"omitempty,oneof=carga descarga entrega retirada"`
	Status        *string         `json:"status"`
	ProjectID     *string         `json:"project_id"`
	TeamID        *string         `json:"team_id"`
	VehicleID     *string         `json:"vehicle_id"`
	ScheduledDate *string         `json:"scheduled_date" binding:"omitempty,isodate"`
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Items         []LogisticsItem `json:"items" binding:"omitempty,dive"`
}

func (r LogisticsEventPatch) ToEntity() (entities.LogisticsEventPatch, error) {
	p := entities.LogisticsEventPatch{
		ProjectID:   trimPtr(r.ProjectID),
		TeamID:      trimPtr(r.TeamID),
		VehicleID:   trimPtr(r.VehicleID),
		Title:       r.Title,
		Description: r.Description,
		Items:       toLogisticsItems(r.Items),
	}
	if r.ScheduledDate != nil {
		t, err := ParseDate(*r.ScheduledDate)
		if err != nil {
			return entities.LogisticsEventPatch{}, err
		}
		p.ScheduledDate = &t
	}
	if r.Type != nil {
		v := entities.LogisticsEventType(*r.Type)
		p.Type = &v
	}
	if r.Status != nil {
		v := entities.LogisticsEventStatus(*r.Status)
		p.Status = &v
	}
	return p, nil
}
