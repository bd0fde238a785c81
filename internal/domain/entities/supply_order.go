package entities

import "time"

// SupplyOrderStatus represents the warehouse (almoxarifado) review flow.
//
// Domain notes:
//   - A mediator reviews orders and moves them to aprovado/recusado, then
//     comprado once purchased. Transitions are not enforced.
type SupplyOrderStatus string

const (
	SupplyOrderStatusPendente  SupplyOrderStatus = "pendente"
	SupplyOrderStatusEmAnalise SupplyOrderStatus = "em_analise"
	SupplyOrderStatusAprovado  SupplyOrderStatus = "aprovado"
	SupplyOrderStatusComprado  SupplyOrderStatus = "comprado"
	SupplyOrderStatusRecusado  SupplyOrderStatus = "recusado"
)

func (s SupplyOrderStatus) IsValid() bool {
	switch s {
	case SupplyOrderStatusPendente, SupplyOrderStatusEmAnalise, SupplyOrderStatusAprovado,
		SupplyOrderStatusComprado, SupplyOrderStatusRecusado:
		return true
	}
	return false
}

// SupplyOrigin tells whether the material is needed in the shop or on site.
type SupplyOrigin string

const (
	SupplyOriginProducao SupplyOrigin = "producao"
	SupplyOriginObra     SupplyOrigin = "obra"
)

func (o SupplyOrigin) IsValid() bool {
	return o == SupplyOriginProducao || o == SupplyOriginObra
}

// SupplyOrder is a material request to the warehouse.
type SupplyOrder struct {
	ID            string            `json:"id"`
	ProjectID     string            `json:"project_id"`
	TeamID        string            `json:"team_id"`
	RequestedBy   string            `json:"requested_by"`
	Origin        SupplyOrigin      `json:"origin"`
	Category      string            `json:"category"`
	Item          string            `json:"item"`
	Quantity      float64           `json:"quantity"`
	Unit          string            `json:"unit"`
	Reason        string            `json:"reason"`
	Priority      Priority          `json:"priority"`
	Status        SupplyOrderStatus `json:"status"`
	EstimatedCost *float64          `json:"estimated_cost,omitempty"`
	MediatorNotes string            `json:"mediator_notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (o SupplyOrder) EntityID() string { return o.ID }

func (o SupplyOrder) Clone() SupplyOrder {
	if o.EstimatedCost != nil {
		cost := *o.EstimatedCost
		o.EstimatedCost = &cost
	}
	return o
}

type NewSupplyOrder struct {
	ProjectID     string
	TeamID        string
	RequestedBy   string
	Origin        SupplyOrigin
	Category      string
	Item          string
	Quantity      float64
	Unit          string
	Reason        string
	Priority      Priority
	Status        SupplyOrderStatus
	EstimatedCost *float64
	MediatorNotes string
}

type SupplyOrderPatch struct {
	ProjectID     *string
	TeamID        *string
	RequestedBy   *string
	Origin        *SupplyOrigin
	Category      *string
	Item          *string
	Quantity      *float64
	Unit          *string
	Reason        *string
	Priority      *Priority
	Status        *SupplyOrderStatus
	EstimatedCost *float64
	MediatorNotes *string
}

func (p SupplyOrderPatch) ApplyTo(o SupplyOrder) SupplyOrder {
	if p.ProjectID != nil {
		o.ProjectID = *p.ProjectID
	}
	if p.TeamID != nil {
		o.TeamID = *p.TeamID
	}
	if p.RequestedBy != nil {
		o.RequestedBy = *p.RequestedBy
	}
	if p.Origin != nil {
		o.Origin = *p.Origin
	}
	if p.Category != nil {
		o.Category = *p.Category
	}
	if p.Item != nil {
		o.Item = *p.Item
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		o.Unit = *p.Unit
	}
	if p.Reason != nil {
		o.Reason = *p.Reason
	}
	if p.Priority != nil {
		o.Priority = *p.Priority
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.EstimatedCost != nil {
		cost := *p.EstimatedCost
		o.EstimatedCost = &cost
	}
	if p.MediatorNotes != nil {
		o.MediatorNotes = *p.MediatorNotes
	}
	return o
}
