package entities

import "time"

// Collection names the six collections held by the entity store.
type Collection string

const (
	CollectionRequests        Collection = "requests"
	CollectionProjects        Collection = "projects"
	CollectionTeams           Collection = "teams"
	CollectionVehicles        Collection = "vehicles"
	CollectionSupplyOrders    Collection = "supply_orders"
	CollectionLogisticsEvents Collection = "logistics_events"
)

// Operation names a store mutation for change events and metrics.
type Operation string

const (
	OperationAdd          Operation = "add"
	OperationUpdate       Operation = "update"
	OperationUpdateStatus Operation = "update_status"
	OperationDelete       Operation = "delete"
	OperationAddMember    Operation = "add_member"
	OperationRemoveMember Operation = "remove_member"
	OperationAddRecord    Operation = "add_record"
	OperationReset        Operation = "reset"
)

// ChangeEvent describes one successful mutation of the store.
type ChangeEvent struct {
	Collection Collection `json:"collection"`
	Operation  Operation  `json:"operation"`
	EntityID   string     `json:"entity_id,omitempty"`
	At         time.Time  `json:"at"`
}

// Snapshot is the full content of the store at one point in time, used for
// seeding and persistence. Each collection keeps the store's ordering.
type Snapshot struct {
	Requests        []Request        `json:"requests"`
	Projects        []Project        `json:"projects"`
	Teams           []Team           `json:"teams"`
	Vehicles        []Vehicle        `json:"vehicles"`
	SupplyOrders    []SupplyOrder    `json:"supply_orders"`
	LogisticsEvents []LogisticsEvent `json:"logistics_events"`
}

// Len returns the total number of records across all collections.
func (s Snapshot) Len() int {
	return len(s.Requests) + len(s.Projects) + len(s.Teams) + len(s.Vehicles) +
		len(s.SupplyOrders) + len(s.LogisticsEvents)
}
