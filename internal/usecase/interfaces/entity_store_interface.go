package interfaces

import "marcenaria_gestao/internal/domain/entities"

// The entity store is in-process and cannot fail: update/delete/status
// operations report found=false for an unknown id and change nothing.

type IRequestStore interface {
	Requests() []entities.Request
	GetRequest(id string) (entities.Request, bool)
	AddRequest(in entities.NewRequest) entities.Request
	UpdateRequest(id string, patch entities.RequestPatch) (entities.Request, bool)
	UpdateRequestStatus(id string, status entities.RequestStatus) (entities.Request, bool)
	DeleteRequest(id string) bool
}

type IProjectStore interface {
	Projects() []entities.Project
	GetProject(id string) (entities.Project, bool)
	AddProject(in entities.NewProject) entities.Project
	UpdateProject(id string, patch entities.ProjectPatch) (entities.Project, bool)
	UpdateProjectStatus(id string, status entities.ProjectStatus) (entities.Project, bool)
	DeleteProject(id string) bool
	AddProjectUpdate(projectID string, in entities.NewProjectUpdate) (entities.Project, bool)
}

type ITeamStore interface {
	Teams() []entities.Team
	GetTeam(id string) (entities.Team, bool)
	AddTeam(in entities.NewTeam) entities.Team
	UpdateTeam(id string, patch entities.TeamPatch) (entities.Team, bool)
	DeleteTeam(id string) bool
	AddTeamMember(teamID string, in entities.NewTeamMember) (entities.Team, bool)
	RemoveTeamMember(teamID, memberID string) (entities.Team, bool)
}

type IVehicleStore interface {
	Vehicles() []entities.Vehicle
	GetVehicle(id string) (entities.Vehicle, bool)
	AddVehicle(in entities.NewVehicle) entities.Vehicle
	UpdateVehicle(id string, patch entities.VehiclePatch) (entities.Vehicle, bool)
	UpdateVehicleStatus(id string, status entities.VehicleStatus) (entities.Vehicle, bool)
	DeleteVehicle(id string) bool
	AddMaintenanceRecord(vehicleID string, in entities.NewMaintenanceRecord) (entities.Vehicle, bool)
}

type ISupplyOrderStore interface {
	SupplyOrders() []entities.SupplyOrder
	GetSupplyOrder(id string) (entities.SupplyOrder, bool)
	AddSupplyOrder(in entities.NewSupplyOrder) entities.SupplyOrder
	UpdateSupplyOrder(id string, patch entities.SupplyOrderPatch) (entities.SupplyOrder, bool)
	UpdateSupplyOrderStatus(id string, status entities.SupplyOrderStatus) (entities.SupplyOrder, bool)
	DeleteSupplyOrder(id string) bool
}

type ILogisticsEventStore interface {
	LogisticsEvents() []entities.LogisticsEvent
	GetLogisticsEvent(id string) (entities.LogisticsEvent, bool)
	AddLogisticsEvent(in entities.NewLogisticsEvent) entities.LogisticsEvent
	UpdateLogisticsEvent(id string, patch entities.LogisticsEventPatch) (entities.LogisticsEvent, bool)
	UpdateLogisticsEventStatus(id string, status entities.LogisticsEventStatus) (entities.LogisticsEvent, bool)
	DeleteLogisticsEvent(id string) bool
}

// IStateStore exposes the whole store content at once.
type IStateStore interface {
	Snapshot() entities.Snapshot
	Restore(snap entities.Snapshot)
}

// IEntityStore is the full contract of the in-memory entity store.
type IEntityStore interface {
	IRequestStore
	IProjectStore
	ITeamStore
	IVehicleStore
	ISupplyOrderStore
	ILogisticsEventStore
	IStateStore
}
