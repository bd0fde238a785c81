package usecase

import (
	"context"
	"errors"
	"strings"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidRequestStatus = errors.New("invalid request status")
	ErrInvalidRequestInput  = errors.New("invalid request input")
)

// RequestFilter narrows List results. Zero fields match everything; Query is
// a case-insensitive substring of type or description.
type RequestFilter struct {
	Status    entities.RequestStatus
	ProjectID string
	TeamID    string
	Query     string
}

// IRequestUseCase exposes fabrication request (solicitação) operations.
//
// Unknown ids are reported as ErrRequestNotFound; the store itself stays
// untouched in that case.
type IRequestUseCase interface {
	List(ctx context.Context, filter RequestFilter) ([]entities.Request, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	Create(ctx context.Context, in entities.NewRequest) (entities.Request, error)
	Update(ctx context.Context, id string, patch entities.RequestPatch) (entities.Request, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.Request, error)
	Delete(ctx context.Context, id string) error
}

type RequestUseCase struct {
	store    interfaces.IRequestStore
	notifier changeNotifier
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(store interfaces.IRequestStore, publisher interfaces.IEventPublisher) *RequestUseCase {
	return &RequestUseCase{store: store, notifier: newChangeNotifier(publisher)}
}

func (u *RequestUseCase) List(_ context.Context, filter RequestFilter) ([]entities.Request, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidRequestStatus
	}
	out := make([]entities.Request, 0)
	for _, r := range u.store.Requests() {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if !matchesID(filter.ProjectID, r.ProjectID) || !matchesID(filter.TeamID, r.TeamID) {
			continue
		}
		if !matchesQuery(filter.Query, r.Type, r.Description) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (u *RequestUseCase) GetByID(_ context.Context, id string) (entities.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	r, ok := u.store.GetRequest(id)
	if !ok {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) Create(ctx context.Context, in entities.NewRequest) (entities.Request, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return entities.Request{}, ErrInvalidRequestInput
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedia
	}
	if !in.Priority.IsValid() {
		return entities.Request{}, ErrInvalidPriority
	}
	if in.Status == "" {
		in.Status = entities.RequestStatusPendente
	}
	if !in.Status.IsValid() {
		return entities.Request{}, ErrInvalidRequestStatus
	}

	created := u.store.AddRequest(in)
	u.notifier.changed(ctx, entities.CollectionRequests, entities.OperationAdd, created.ID)
	return created, nil
}

func (u *RequestUseCase) Update(ctx context.Context, id string, patch entities.RequestPatch) (entities.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return entities.Request{}, ErrInvalidPriority
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return entities.Request{}, ErrInvalidRequestStatus
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return entities.Request{}, ErrInvalidRequestInput
	}

	updated, ok := u.store.UpdateRequest(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionRequests, entities.OperationUpdate, id)
		return entities.Request{}, ErrRequestNotFound
	}
	u.notifier.changed(ctx, entities.CollectionRequests, entities.OperationUpdate, id)
	return updated, nil
}

func (u *RequestUseCase) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	if !status.IsValid() {
		return entities.Request{}, ErrInvalidRequestStatus
	}

	updated, ok := u.store.UpdateRequestStatus(id, status)
	if !ok {
		u.notifier.missed(entities.CollectionRequests, entities.OperationUpdateStatus, id)
		return entities.Request{}, ErrRequestNotFound
	}
	u.notifier.changed(ctx, entities.CollectionRequests, entities.OperationUpdateStatus, id)
	return updated, nil
}

func (u *RequestUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequestID
	}
	if !u.store.DeleteRequest(id) {
		u.notifier.missed(entities.CollectionRequests, entities.OperationDelete, id)
		return ErrRequestNotFound
	}
	u.notifier.changed(ctx, entities.CollectionRequests, entities.OperationDelete, id)
	return nil
}
