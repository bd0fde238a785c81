package entities

import (
	"slices"
	"time"
)

// RequestStatus represents the lifecycle of a fabrication request (solicitação).
//
// Domain notes:
//   - Any status may be set from any other status; there is no transition table.
type RequestStatus string

const (
	RequestStatusPendente   RequestStatus = "pendente"
	RequestStatusEmAnalise  RequestStatus = "em_analise"
	RequestStatusEmProducao RequestStatus = "em_producao"
	RequestStatusFinalizado RequestStatus = "finalizado"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPendente, RequestStatusEmAnalise, RequestStatusEmProducao, RequestStatusFinalizado:
		return true
	}
	return false
}

// Request is a fabrication/service request raised by a team for a project.
type Request struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	TeamID      string        `json:"team_id"`
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Priority    Priority      `json:"priority"`
	Deadline    time.Time     `json:"deadline"`
	Status      RequestStatus `json:"status"`
	Attachments []string      `json:"attachments"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (r Request) EntityID() string { return r.ID }

// Clone returns a copy that shares no slices with r.
func (r Request) Clone() Request {
	r.Attachments = slices.Clone(r.Attachments)
	return r
}

// NewRequest carries the caller-supplied fields of a Request.
type NewRequest struct {
	ProjectID   string
	TeamID      string
	Type        string
	Description string
	Priority    Priority
	Deadline    time.Time
	Status      RequestStatus
	Attachments []string
}

// RequestPatch holds a partial update; nil fields are left untouched.
type RequestPatch struct {
	ProjectID   *string
	TeamID      *string
	Type        *string
	Description *string
	Priority    *Priority
	Deadline    *time.Time
	Status      *RequestStatus
	Attachments []string
}

func (p RequestPatch) ApplyTo(r Request) Request {
	if p.ProjectID != nil {
		r.ProjectID = *p.ProjectID
	}
	if p.TeamID != nil {
		r.TeamID = *p.TeamID
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Deadline != nil {
		r.Deadline = *p.Deadline
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Attachments != nil {
		r.Attachments = slices.Clone(p.Attachments)
	}
	return r
}
