package entities

import (
	"slices"
	"time"
)

type VehicleStatus string

const (
	VehicleStatusDisponivel VehicleStatus = "disponivel"
	VehicleStatusEmUso      VehicleStatus = "em_uso"
	VehicleStatusManutencao VehicleStatus = "manutencao"
)

func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusDisponivel, VehicleStatusEmUso, VehicleStatusManutencao:
		return true
	}
	return false
}

// MaintenanceRecord is one service performed on a vehicle.
type MaintenanceRecord struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Odometer    int       `json:"odometer"`
}

// Vehicle is a fleet vehicle, optionally assigned to a team.
//
// MaintenanceHistory is append-only and kept newest first.
type Vehicle struct {
	ID                  string              `json:"id"`
	Plate               string              `json:"plate"`
	Model               string              `json:"model"`
	Brand               string              `json:"brand"`
	Year                int                 `json:"year"`
	Color               string              `json:"color"`
	Type                string              `json:"type"`
	Status              VehicleStatus       `json:"status"`
	TeamID              string              `json:"team_id,omitempty"`
	Odometer            int                 `json:"odometer"`
	NextMaintenanceDate time.Time           `json:"next_maintenance_date"`
	NextFuelDate        time.Time           `json:"next_fuel_date"`
	MaintenanceHistory  []MaintenanceRecord `json:"maintenance_history"`
}

func (v Vehicle) EntityID() string { return v.ID }

func (v Vehicle) Clone() Vehicle {
	v.MaintenanceHistory = slices.Clone(v.MaintenanceHistory)
	return v
}

// MaintenanceDue reports whether the next maintenance falls on or before limit.
func (v Vehicle) MaintenanceDue(limit time.Time) bool {
	return !v.NextMaintenanceDate.IsZero() && !v.NextMaintenanceDate.After(limit)
}

type NewVehicle struct {
	Plate               string
	Model               string
	Brand               string
	Year                int
	Color               string
	Type                string
	Status              VehicleStatus
	TeamID              string
	Odometer            int
	NextMaintenanceDate time.Time
	NextFuelDate        time.Time
}

type NewMaintenanceRecord struct {
	Date        time.Time
	Type        string
	Description string
	Cost        float64
	Odometer    int
}

type VehiclePatch struct {
	Plate               *string
	Model               *string
	Brand               *string
	Year                *int
	Color               *string
	Type                *string
	Status              *VehicleStatus
	TeamID              *string
	Odometer            *int
	NextMaintenanceDate *time.Time
	NextFuelDate        *time.Time
}

func (p VehiclePatch) ApplyTo(v Vehicle) Vehicle {
	if p.Plate != nil {
		v.Plate = *p.Plate
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Brand != nil {
		v.Brand = *p.Brand
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.Color != nil {
		v.Color = *p.Color
	}
	if p.Type != nil {
		v.Type = *p.Type
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.TeamID != nil {
		v.TeamID = *p.TeamID
	}
	if p.Odometer != nil {
		v.Odometer = *p.Odometer
	}
	if p.NextMaintenanceDate != nil {
		v.NextMaintenanceDate = *p.NextMaintenanceDate
	}
	if p.NextFuelDate != nil {
		v.NextFuelDate = *p.NextFuelDate
	}
	return v
}
