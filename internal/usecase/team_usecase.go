package usecase

import (
	"context"
	"errors"
	"strings"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrInvalidTeamID      = errors.New("invalid team id")
	ErrInvalidMemberID    = errors.New("invalid member id")
	ErrInvalidTeamInput   = errors.New("invalid team input")
)

// TeamFilter narrows List results. Query matches name, leader or specialty.
type TeamFilter struct {
	ProjectID string
	Query     string
}

// ITeamUseCase exposes team (equipe) operations, roster changes included.
type ITeamUseCase interface {
	List(ctx context.Context, filter TeamFilter) ([]entities.Team, error)
	GetByID(ctx context.Context, id string) (entities.Team, error)
	Create(ctx context.Context, in entities.NewTeam) (entities.Team, error)
	Update(ctx context.Context, id string, patch entities.TeamPatch) (entities.Team, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, teamID string, in entities.NewTeamMember) (entities.Team, error)
	RemoveMember(ctx context.Context, teamID, memberID string) (entities.Team, error)
}

type TeamUseCase struct {
	store    interfaces.ITeamStore
	notifier changeNotifier
}

var _ ITeamUseCase = (*TeamUseCase)(nil)

func NewTeamUseCase(store interfaces.ITeamStore, publisher interfaces.IEventPublisher) *TeamUseCase {
	return &TeamUseCase{store: store, notifier: newChangeNotifier(publisher)}
}

func (u *TeamUseCase) List(_ context.Context, filter TeamFilter) ([]entities.Team, error) {
	out := make([]entities.Team, 0)
	for _, t := range u.store.Teams() {
		if !matchesID(filter.ProjectID, t.ProjectID) {
			continue
		}
		if !matchesQuery(filter.Query, t.Name, t.Leader, t.Specialty) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (u *TeamUseCase) GetByID(_ context.Context, id string) (entities.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Team{}, ErrInvalidTeamID
	}
	t, ok := u.store.GetTeam(id)
	if !ok {
		return entities.Team{}, ErrTeamNotFound
	}
	return t, nil
}

func (u *TeamUseCase) Create(ctx context.Context, in entities.NewTeam) (entities.Team, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Team{}, ErrInvalidTeamInput
	}
	for _, m := range in.MemberList {
		if strings.TrimSpace(m.Name) == "" {
			return entities.Team{}, ErrInvalidTeamInput
		}
	}

	created := u.store.AddTeam(in)
	u.notifier.changed(ctx, entities.CollectionTeams, entities.OperationAdd, created.ID)
	return created, nil
}

func (u *TeamUseCase) Update(ctx context.Context, id string, patch entities.TeamPatch) (entities.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Team{}, ErrInvalidTeamID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Team{}, ErrInvalidTeamInput
	}

	updated, ok := u.store.UpdateTeam(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionTeams, entities.OperationUpdate, id)
		return entities.Team{}, ErrTeamNotFound
	}
	u.notifier.changed(ctx, entities.CollectionTeams, entities.OperationUpdate, id)
	return updated, nil
}

func (u *TeamUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTeamID
	}
	if !u.store.DeleteTeam(id) {
		u.notifier.missed(entities.CollectionTeams, entities.OperationDelete, id)
		return ErrTeamNotFound
	}
	u.notifier.changed(ctx, entities.CollectionTeams, entities.OperationDelete, id)
	return nil
}

func (u *TeamUseCase) AddMember(ctx context.Context, teamID string, in entities.NewTeamMember) (entities.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return entities.Team{}, ErrInvalidTeamID
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Team{}, ErrInvalidTeamInput
	}

	updated, ok := u.store.AddTeamMember(teamID, in)
	if !ok {
		u.notifier.missed(entities.CollectionTeams, entities.OperationAddMember, teamID)
		return entities.Team{}, ErrTeamNotFound
	}
	u.notifier.changed(ctx, entities.CollectionTeams, entities.OperationAddMember, teamID)
	return updated, nil
}

func (u *TeamUseCase) RemoveMember(ctx context.Context, teamID, memberID string) (entities.Team, error) {
	teamID = strings.TrimSpace(teamID)
	memberID = strings.TrimSpace(memberID)
	if teamID == "" {
		return entities.Team{}, ErrInvalidTeamID
	}
	if memberID == "" {
		return entities.Team{}, ErrInvalidMemberID
	}

	updated, ok := u.store.RemoveTeamMember(teamID, memberID)
	if !ok {
		u.notifier.missed(entities.CollectionTeams, entities.OperationRemoveMember, teamID)
		if _, exists := u.store.GetTeam(teamID); !exists {
			return entities.Team{}, ErrTeamNotFound
		}
		return entities.Team{}, ErrTeamMemberNotFound
	}
	u.notifier.changed(ctx, entities.CollectionTeams, entities.OperationRemoveMember, teamID)
	return updated, nil
}
