package entities

import (
	"slices"
	"time"
)

type LogisticsEventStatus string

const (
	LogisticsEventStatusAgendado    LogisticsEventStatus = "agendado"
	LogisticsEventStatusEmAndamento LogisticsEventStatus = "em_andamento"
	LogisticsEventStatusConcluido   LogisticsEventStatus = "concluido"
	LogisticsEventStatusCancelado   LogisticsEventStatus = "cancelado"
)

func (s LogisticsEventStatus) IsValid() bool {
	switch s {
	case LogisticsEventStatusAgendado, LogisticsEventStatusEmAndamento,
		LogisticsEventStatusConcluido, LogisticsEventStatusCancelado:
		return true
	}
	return false
}

// LogisticsEventType classifies a timeline entry (carga/descarga and
// deliveries to or pickups from a site).
type LogisticsEventType string

const (
	LogisticsEventTypeCarga    LogisticsEventType = "carga"
	LogisticsEventTypeDescarga LogisticsEventType = "descarga"
	LogisticsEventTypeEntrega  LogisticsEventType = "entrega"
	LogisticsEventTypeRetirada LogisticsEventType = "retirada"
)

func (t LogisticsEventType) IsValid() bool {
	switch t {
	case LogisticsEventTypeCarga, LogisticsEventTypeDescarga, LogisticsEventTypeEntrega, LogisticsEventTypeRetirada:
		return true
	}
	return false
}

type LogisticsItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

// LogisticsEvent is an entry of the logistics/history timeline. Team and
// vehicle links are optional and never validated.
type LogisticsEvent struct {
	ID            string               `json:"id"`
	Type          LogisticsEventType   `json:"type"`
	Status        LogisticsEventStatus `json:"status"`
	ProjectID     string               `json:"project_id"`
	TeamID        string               `json:"team_id,omitempty"`
	VehicleID     string               `json:"vehicle_id,omitempty"`
	ScheduledDate time.Time            `json:"scheduled_date"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Items         []LogisticsItem      `json:"items"`
	CreatedBy     string               `json:"created_by"`
	CreatedAt     time.Time            `json:"created_at"`
}

func (e LogisticsEvent) EntityID() string { return e.ID }

func (e LogisticsEvent) Clone() LogisticsEvent {
	e.Items = slices.Clone(e.Items)
	return e
}

type NewLogisticsEvent struct {
	Type          LogisticsEventType
	Status        LogisticsEventStatus
	ProjectID     string
	TeamID        string
	VehicleID     string
	ScheduledDate time.Time
	Title         string
	Description   string
	Items         []LogisticsItem
	CreatedBy     string
}

type LogisticsEventPatch struct {
	Type          *LogisticsEventType
	Status        *LogisticsEventStatus
	ProjectID     *string
	TeamID        *string
	VehicleID     *string
	ScheduledDate *time.Time
	Title         *string
	Description   *string
	Items         []LogisticsItem
}

func (p LogisticsEventPatch) ApplyTo(e LogisticsEvent) LogisticsEvent {
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ProjectID != nil {
		e.ProjectID = *p.ProjectID
	}
	if p.TeamID != nil {
		e.TeamID = *p.TeamID
	}
	if p.VehicleID != nil {
		e.VehicleID = *p.VehicleID
	}
	if p.ScheduledDate != nil {
		e.ScheduledDate = *p.ScheduledDate
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Items != nil {
		e.Items = slices.Clone(p.Items)
	}
	return e
}
