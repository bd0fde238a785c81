package handlers

import (
	"net/http"
	"testing"
	"time"

	"marcenaria_gestao/internal/adapter/persistence/memory"
	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase"

	"github.com/tidwall/gjson"
)

func newProjectFixture(t *testing.T) (*ProjectHandler, string) {
	t.Helper()
	store := memory.NewEntityStore(memory.WithIDSeed(300))
	p := store.AddProject(entities.NewProject{
		Name:      "Cozinha Silva",
		Client:    "Ana Silva",
		Status:    entities.ProjectStatusAtiva,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	store.AddProject(entities.NewProject{Name: "Closet Souza", Status: entities.ProjectStatusPausada})
	return NewProjectHandler(usecase.NewProjectUseCase(store, nil)), p.ID
}

func TestProjectHandler_ListProjects(t *testing.T) {
	h, _ := newProjectFixture(t)

	t.Run("filtered by status", func(t *testing.T) {
		w := serve(http.MethodGet, "/v1/projects", h.ListProjects, "/v1/projects?status=pausada", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if gjson.Get(body, "total").Int() != 1 || gjson.Get(body, "items.0.name").String() != "Closet Souza" {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		w := serve(http.MethodGet, "/v1/projects", h.ListProjects, "/v1/projects?status=cancelada", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if gjson.Get(w.Body.String(), "code").String() != "INVALID_STATUS" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestProjectHandler_CreateProject(t *testing.T) {
	h, _ := newProjectFixture(t)

	t.Run("success defaults to ativa", func(t *testing.T) {
		w := serve(http.MethodPost, "/v1/projects", h.CreateProject, "/v1/projects",
			`{"name":"Home office","client":"Carlos","start_date":"2024-04-01","expected_end_date":"2024-05-10"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if gjson.Get(body, "status").String() != "ativa" || gjson.Get(body, "expected_end_date").String() != "2024-05-10" {
			t.Fatalf("unexpected body %s", body)
		}
		if gjson.Get(body, "updates.#").Int() != 0 {
			t.Fatalf("expected empty updates, got %s", body)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		w := serve(http.MethodPost, "/v1/projects", h.CreateProject, "/v1/projects",
			`{"name":"Home office","start_date":"2024-04-01","expected_end_date":"2024-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		w := serve(http.MethodPost, "/v1/projects", h.CreateProject, "/v1/projects", `{"client":"Carlos"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_UpdateAndStatus(t *testing.T) {
	h, id := newProjectFixture(t)

	w := serve(http.MethodPatch, "/v1/projects/:id", h.UpdateProject, "/v1/projects/"+id, `{"address":"Rua das Flores, 10"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); gjson.Get(body, "address").String() != "Rua das Flores, 10" || gjson.Get(body, "name").String() != "Cozinha Silva" {
		t.Fatalf("patch should only touch address, got %s", body)
	}

	w = serve(http.MethodPatch, "/v1/projects/:id/status", h.UpdateProjectStatus, "/v1/projects/"+id+"/status", `{"status":"concluida"}`)
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "status").String() != "concluida" {
		t.Fatalf("unexpected status response %d %s", w.Code, w.Body.String())
	}

	w = serve(http.MethodPatch, "/v1/projects/:id/status", h.UpdateProjectStatus, "/v1/projects/prj-0/status", `{"status":"ativa"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProjectHandler_AddProjectUpdate(t *testing.T) {
	h, id := newProjectFixture(t)

	w := serve(http.MethodPost, "/v1/projects/:id/updates", h.AddProjectUpdate, "/v1/projects/"+id+"/updates",
		`{"author":"Marcos","description":"Montagem dos armarios superiores"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if gjson.Get(body, "updates.#").Int() != 1 || gjson.Get(body, "updates.0.author").String() != "Marcos" {
		t.Fatalf("unexpected body %s", body)
	}

	w = serve(http.MethodPost, "/v1/projects/:id/updates", h.AddProjectUpdate, "/v1/projects/"+id+"/updates", `{"author":"Marcos"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = serve(http.MethodPost, "/v1/projects/:id/updates", h.AddProjectUpdate, "/v1/projects/prj-0/updates", `{"description":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	h, id := newProjectFixture(t)

	w := serve(http.MethodDelete, "/v1/projects/:id", h.DeleteProject, "/v1/projects/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = serve(http.MethodGet, "/v1/projects/:id", h.GetProject, "/v1/projects/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}
