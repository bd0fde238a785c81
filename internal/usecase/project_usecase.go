package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidProjectInput  = errors.New("invalid project input")
)

// ProjectFilter narrows List results. Query matches name, client or address.
type ProjectFilter struct {
	Status entities.ProjectStatus
	TeamID string
	Query  string
}

// IProjectUseCase exposes project (obra) operations.
type IProjectUseCase interface {
	List(ctx context.Context, filter ProjectFilter) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Create(ctx context.Context, in entities.NewProject) (entities.Project, error)
	Update(ctx context.Context, id string, patch entities.ProjectPatch) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	AddUpdate(ctx context.Context, id string, in entities.NewProjectUpdate) (entities.Project, error)
}

type ProjectUseCase struct {
	store    interfaces.IProjectStore
	notifier changeNotifier
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(store interfaces.IProjectStore, publisher interfaces.IEventPublisher) *ProjectUseCase {
	return &ProjectUseCase{store: store, notifier: newChangeNotifier(publisher)}
}

func (u *ProjectUseCase) List(_ context.Context, filter ProjectFilter) ([]entities.Project, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidProjectStatus
	}
	out := make([]entities.Project, 0)
	for _, p := range u.store.Projects() {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.TeamID != "" && !slices.Contains(p.TeamIDs, filter.TeamID) {
			continue
		}
		if !matchesQuery(filter.Query, p.Name, p.Client, p.Address) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *ProjectUseCase) GetByID(_ context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, ok := u.store.GetProject(id)
	if !ok {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Create(ctx context.Context, in entities.NewProject) (entities.Project, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}
	if !in.ExpectedEndDate.IsZero() && in.ExpectedEndDate.Before(in.StartDate) {
		return entities.Project{}, ErrInvalidProjectInput
	}
	if in.Status == "" {
		in.Status = entities.ProjectStatusAtiva
	}
	if !in.Status.IsValid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	created := u.store.AddProject(in)
	u.notifier.changed(ctx, entities.CollectionProjects, entities.OperationAdd, created.ID)
	return created, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, patch entities.ProjectPatch) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	updated, ok := u.store.UpdateProject(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionProjects, entities.OperationUpdate, id)
		return entities.Project{}, ErrProjectNotFound
	}
	u.notifier.changed(ctx, entities.CollectionProjects, entities.OperationUpdate, id)
	return updated, nil
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !status.IsValid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	updated, ok := u.store.UpdateProjectStatus(id, status)
	if !ok {
		u.notifier.missed(entities.CollectionProjects, entities.OperationUpdateStatus, id)
		return entities.Project{}, ErrProjectNotFound
	}
	u.notifier.changed(ctx, entities.CollectionProjects, entities.OperationUpdateStatus, id)
	return updated, nil
}

// Delete removes the project only. Requests, supply orders and events that
// reference it are kept.
func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	if !u.store.DeleteProject(id) {
		u.notifier.missed(entities.CollectionProjects, entities.OperationDelete, id)
		return ErrProjectNotFound
	}
	u.notifier.changed(ctx, entities.CollectionProjects, entities.OperationDelete, id)
	return nil
}

func (u *ProjectUseCase) AddUpdate(ctx context.Context, id string, in entities.NewProjectUpdate) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}

	updated, ok := u.store.AddProjectUpdate(id, in)
	if !ok {
		u.notifier.missed(entities.CollectionProjects, entities.OperationAddRecord, id)
		return entities.Project{}, ErrProjectNotFound
	}
	u.notifier.changed(ctx, entities.CollectionProjects, entities.OperationAddRecord, id)
	return updated, nil
}
