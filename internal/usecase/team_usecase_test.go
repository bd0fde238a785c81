package usecase

import (
	"context"
	"errors"
	"testing"

	"marcenaria_gestao/internal/domain/entities"
)

func TestTeamUseCase_Members(t *testing.T) {
	ctx := context.Background()
	uc := NewTeamUseCase(newTestStore(), nil)

	team, err := uc.Create(ctx, entities.NewTeam{
		Name:       "Equipe Azul",
		MemberList: []entities.TeamMember{{Name: "Carlos", Role: "Marceneiro"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Members() != 1 {
		t.Fatalf("expected 1 member, got %d", team.Members())
	}

	t.Run("add member", func(t *testing.T) {
		if _, err := uc.AddMember(ctx, team.ID, entities.NewTeamMember{Name: " "}); !errors.Is(err, ErrInvalidTeamInput) {
			t.Fatalf("expected ErrInvalidTeamInput, got %v", err)
		}
		if _, err := uc.AddMember(ctx, "team-404", entities.NewTeamMember{Name: "Ana"}); !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
		got, err := uc.AddMember(ctx, team.ID, entities.NewTeamMember{Name: "Ana", Role: "Montadora"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Members() != 2 {
			t.Fatalf("expected 2 members, got %d", got.Members())
		}
	})

	t.Run("remove member", func(t *testing.T) {
		current, _ := uc.GetByID(ctx, team.ID)
		memberID := current.MemberList[0].ID

		if _, err := uc.RemoveMember(ctx, team.ID, ""); !errors.Is(err, ErrInvalidMemberID) {
			t.Fatalf("expected ErrInvalidMemberID, got %v", err)
		}
		if _, err := uc.RemoveMember(ctx, "team-404", memberID); !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
		if _, err := uc.RemoveMember(ctx, team.ID, "mbr-404"); !errors.Is(err, ErrTeamMemberNotFound) {
			t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
		}
		got, err := uc.RemoveMember(ctx, team.ID, memberID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Members() != current.Members()-1 {
			t.Fatalf("expected %d members, got %d", current.Members()-1, got.Members())
		}
	})
}

func TestTeamUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := NewTeamUseCase(newTestStore(), nil)

	if _, err := uc.Create(ctx, entities.NewTeam{Name: ""}); !errors.Is(err, ErrInvalidTeamInput) {
		t.Fatalf("expected ErrInvalidTeamInput, got %v", err)
	}
	if _, err := uc.Create(ctx, entities.NewTeam{Name: "A", MemberList: []entities.TeamMember{{Name: ""}}}); !errors.Is(err, ErrInvalidTeamInput) {
		t.Fatalf("expected ErrInvalidTeamInput, got %v", err)
	}

	team, _ := uc.Create(ctx, entities.NewTeam{Name: "Equipe Verde", ProjectID: "prj-1", Specialty: "Cozinhas"})
	_, _ = uc.Create(ctx, entities.NewTeam{Name: "Equipe Vermelha", ProjectID: "prj-2"})

	byProject, _ := uc.List(ctx, TeamFilter{ProjectID: "prj-1"})
	if len(byProject) != 1 {
		t.Fatalf("expected 1 team, got %d", len(byProject))
	}
	bySpecialty, _ := uc.List(ctx, TeamFilter{Query: "cozinha"})
	if len(bySpecialty) != 1 {
		t.Fatalf("expected 1 team, got %d", len(bySpecialty))
	}

	updated, err := uc.Update(ctx, team.ID, entities.TeamPatch{Leader: ptr("Carlos")})
	if err != nil || updated.Leader != "Carlos" || updated.Name != "Equipe Verde" {
		t.Fatalf("unexpected update: %+v err=%v", updated, err)
	}
	if _, err := uc.Update(ctx, team.ID, entities.TeamPatch{Name: ptr(" ")}); !errors.Is(err, ErrInvalidTeamInput) {
		t.Fatalf("expected ErrInvalidTeamInput, got %v", err)
	}
	if err := uc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetByID(ctx, team.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
