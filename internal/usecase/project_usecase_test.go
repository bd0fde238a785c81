package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marcenaria_gestao/internal/domain/entities"
)

func TestProjectUseCase_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		uc := NewProjectUseCase(newTestStore(), nil)
		if _, err := uc.Create(ctx, entities.NewProject{}); !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc := NewProjectUseCase(newTestStore(), nil)
		_, err := uc.Create(ctx, entities.NewProject{
			Name:            "Casa",
			StartDate:       fixedNow,
			ExpectedEndDate: fixedNow.Add(-24 * time.Hour),
		})
		if !errors.Is(err, ErrInvalidProjectInput) {
			t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
		}
	})

	t.Run("defaults to ativa", func(t *testing.T) {
		uc := NewProjectUseCase(newTestStore(), nil)
		p, err := uc.Create(ctx, entities.NewProject{Name: "Casa", TeamIDs: []string{"team-1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusAtiva || p.ID != "prj-101" {
			t.Fatalf("unexpected project: %+v", p)
		}
	})

	t.Run("status and not found", func(t *testing.T) {
		uc := NewProjectUseCase(newTestStore(), nil)
		p, _ := uc.Create(ctx, entities.NewProject{Name: "Casa"})

		if _, err := uc.UpdateStatus(ctx, p.ID, "cancelada"); !errors.Is(err, ErrInvalidProjectStatus) {
			t.Fatalf("expected ErrInvalidProjectStatus, got %v", err)
		}
		got, err := uc.UpdateStatus(ctx, p.ID, entities.ProjectStatusPausada)
		if err != nil || got.Status != entities.ProjectStatusPausada {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
		if _, err := uc.Update(ctx, "prj-404", entities.ProjectPatch{Name: ptr("x")}); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_AddUpdate(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	uc := NewProjectUseCase(newTestStore(), pub)
	p, _ := uc.Create(ctx, entities.NewProject{Name: "Casa"})

	if _, err := uc.AddUpdate(ctx, p.ID, entities.NewProjectUpdate{Author: "Ana"}); !errors.Is(err, ErrInvalidProjectInput) {
		t.Fatalf("expected ErrInvalidProjectInput, got %v", err)
	}
	if _, err := uc.AddUpdate(ctx, "prj-404", entities.NewProjectUpdate{Description: "x"}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	_, _ = uc.AddUpdate(ctx, p.ID, entities.NewProjectUpdate{Author: "Ana", Description: "medição"})
	got, err := uc.AddUpdate(ctx, p.ID, entities.NewProjectUpdate{Author: "Ana", Description: "instalação"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Updates) != 2 || got.Updates[0].Description != "instalação" {
		t.Fatalf("expected newest update first, got %+v", got.Updates)
	}
	last := pub.events[len(pub.events)-1]
	if last.Operation != entities.OperationAddRecord || last.EntityID != p.ID {
		t.Fatalf("unexpected event: %+v", last)
	}
}

func TestProjectUseCase_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := NewProjectUseCase(newTestStore(), nil)
	a, _ := uc.Create(ctx, entities.NewProject{Name: "Residência Almeida", Client: "Fernanda", TeamIDs: []string{"team-1"}})
	_, _ = uc.Create(ctx, entities.NewProject{Name: "Loja Café", Status: entities.ProjectStatusConcluida, TeamIDs: []string{"team-2"}})

	byTeam, _ := uc.List(ctx, ProjectFilter{TeamID: "team-1"})
	if len(byTeam) != 1 || byTeam[0].ID != a.ID {
		t.Fatalf("unexpected team filter result: %+v", byTeam)
	}
	byClient, _ := uc.List(ctx, ProjectFilter{Query: "fernanda"})
	if len(byClient) != 1 {
		t.Fatalf("expected 1 match by client, got %d", len(byClient))
	}
	done, _ := uc.List(ctx, ProjectFilter{Status: entities.ProjectStatusConcluida})
	if len(done) != 1 {
		t.Fatalf("expected 1 concluida, got %d", len(done))
	}

	if err := uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, a.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
