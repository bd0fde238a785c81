package entities

import (
	"slices"
	"time"
)

// ProjectStatus represents the lifecycle of a project (obra).
type ProjectStatus string

const (
	ProjectStatusAtiva     ProjectStatus = "ativa"
	ProjectStatusConcluida ProjectStatus = "concluida"
	ProjectStatusPausada   ProjectStatus = "pausada"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusAtiva, ProjectStatusConcluida, ProjectStatusPausada:
		return true
	}
	return false
}

// ProjectUpdate is one entry of a project's progress log.
// The log is append-only: entries are never edited or removed.
type ProjectUpdate struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
}

// Project is a construction/installation job (obra) for a client.
//
// Teams relate to projects many-to-many through TeamIDs. Updates are kept
// newest first.
type Project struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Client          string          `json:"client"`
	Address         string          `json:"address"`
	Status          ProjectStatus   `json:"status"`
	TeamIDs         []string        `json:"team_ids"`
	StartDate       time.Time       `json:"start_date"`
	ExpectedEndDate time.Time       `json:"expected_end_date"`
	Description     string          `json:"description"`
	Updates         []ProjectUpdate `json:"updates"`
}

func (p Project) EntityID() string { return p.ID }

func (p Project) Clone() Project {
	p.TeamIDs = slices.Clone(p.TeamIDs)
	p.Updates = slices.Clone(p.Updates)
	return p
}

type NewProject struct {
	Name            string
	Client          string
	Address         string
	Status          ProjectStatus
	TeamIDs         []string
	StartDate       time.Time
	ExpectedEndDate time.Time
	Description     string
}

type NewProjectUpdate struct {
	Author      string
	Description string
}

// ProjectPatch holds a partial update. Updates are not patchable; they only
// grow through the dedicated append operation.
type ProjectPatch struct {
	Name            *string
	Client          *string
	Address         *string
	Status          *ProjectStatus
	TeamIDs         []string
	StartDate       *time.Time
	ExpectedEndDate *time.Time
	Description     *string
}

func (p ProjectPatch) ApplyTo(pr Project) Project {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Client != nil {
		pr.Client = *p.Client
	}
	if p.Address != nil {
		pr.Address = *p.Address
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.TeamIDs != nil {
		pr.TeamIDs = slices.Clone(p.TeamIDs)
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.ExpectedEndDate != nil {
		pr.ExpectedEndDate = *p.ExpectedEndDate
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	return pr
}
