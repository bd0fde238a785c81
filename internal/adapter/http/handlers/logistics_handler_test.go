package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"marcenaria_gestao/internal/adapter/persistence/memory"
	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase"

	"github.com/tidwall/gjson"
)

func newLogisticsFixture(t *testing.T) *LogisticsHandler {
	t.Helper()
	store := memory.NewEntityStore(memory.WithIDSeed(100))
	day := func(d, h int) time.Time { return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC) }
	store.AddLogisticsEvent(entities.NewLogisticsEvent{Type: entities.LogisticsEventTypeEntrega, Status: entities.LogisticsEventStatusAgendado, ScheduledDate: day(12, 14), Title: "Entrega cozinha"})
	store.AddLogisticsEvent(entities.NewLogisticsEvent{Type: entities.LogisticsEventTypeCarga, Status: entities.LogisticsEventStatusConcluido, ScheduledDate: day(11, 8), Title: "Carga MDF"})
	store.AddLogisticsEvent(entities.NewLogisticsEvent{Type: entities.LogisticsEventTypeRetirada, Status: entities.LogisticsEventStatusAgendado, ScheduledDate: day(12, 9), Title: "Retirada sobras"})
	return NewLogisticsHandler(usecase.NewLogisticsUseCase(store, nil))
}

func TestLogisticsHandler_Timeline(t *testing.T) {
	h := newLogisticsFixture(t)

	t.Run("grouped by day", func(t *testing.T) {
		w := serve(http.MethodGet, "/v1/logistics-events/timeline", h.Timeline, "/v1/logistics-events/timeline", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if got := gjson.Get(body, "#").Int(); got != 2 {
			t.Fatalf("expected 2 days, got %d: %s", got, body)
		}
		if gjson.Get(body, "0.date").String() != "2024-03-11" || gjson.Get(body, "1.date").String() != "2024-03-12" {
			t.Fatalf("unexpected day order %s", body)
		}
		if gjson.Get(body, "1.events.0.title").String() != "Retirada sobras" {
			t.Fatalf("expected earliest event first, got %s", body)
		}
	})

	t.Run("filtered by status", func(t *testing.T) {
		w := serve(http.MethodGet, "/v1/logistics-events/timeline", h.Timeline, "/v1/logistics-events/timeline?status=concluido", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if gjson.Get(body, "#").Int() != 1 || gjson.Get(body, "0.events.0.type").String() != "carga" {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		w := serve(http.MethodGet, "/v1/logistics-events/timeline", h.Timeline, "/v1/logistics-events/timeline?status=perdido", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLogisticsHandler_CreateLogisticsEvent(t *testing.T) {
	h := newLogisticsFixture(t)

	t.Run("unknown type", func(t *testing.T) {
		w := serve(http.MethodPost, "/v1/logistics-events", h.CreateLogisticsEvent, "/v1/logistics-events",
			`{"type":"mudanca","title":"x","scheduled_date":"2024-03-20"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("item quantity must be positive", func(t *testing.T) {
		w := serve(http.MethodPost, "/v1/logistics-events", h.CreateLogisticsEvent, "/v1/logistics-events",
			`{"type":"descarga","title":"Descarga","scheduled_date":"2024-03-20","items":[{"name":"MDF","quantity":0}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with default status", func(t *testing.T) {
		w := serve(http.MethodPost, "/v1/logistics-events", h.CreateLogisticsEvent, "/v1/logistics-events",
			`{"type":"descarga","title":"Descarga ferragens","scheduled_date":"2024-03-20","items":[{"name":"dobradica","quantity":40,"unit":"un"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if gjson.Get(body, "status").String() != "agendado" || gjson.Get(body, "items.0.unit").String() != "un" {
			t.Fatalf("unexpected body %s", body)
		}
	})
}

func TestLogisticsHandler_DeleteLogisticsEvent(t *testing.T) {
	h := newLogisticsFixture(t)

	w := serve(http.MethodDelete, "/v1/logistics-events/:id", h.DeleteLogisticsEvent, "/v1/logistics-events/log-999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := gjson.Get(w.Body.String(), "code").String(); got != "LOGISTICS_EVENT_NOT_FOUND" {
		t.Fatalf("expected LOGISTICS_EVENT_NOT_FOUND, got %s", got)
	}
}

type stubDashboard struct {
	summary usecase.DashboardSummary
}

func (s stubDashboard) Summary(_ context.Context) (usecase.DashboardSummary, error) {
	return s.summary, nil
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	h := NewDashboardHandler(stubDashboard{summary: usecase.DashboardSummary{
		Requests:       map[entities.RequestStatus]int{entities.RequestStatusPendente: 3},
		ActiveProjects: 2,
		TeamMembers:    9,
	}})

	w := serve(http.MethodGet, "/v1/dashboard", h.GetDashboard, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if gjson.Get(body, "requests.pendente").Int() != 3 || gjson.Get(body, "active_projects").Int() != 2 {
		t.Fatalf("unexpected body %s", body)
	}
	if !gjson.Get(body, "vehicles_due_maintenance").IsArray() {
		t.Fatalf("expected empty array for vehicles_due_maintenance, got %s", body)
	}
}

func TestPing(t *testing.T) {
	w := serve(http.MethodGet, "/v1/ping", Ping, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := gjson.Get(w.Body.String(), "message").String(); got != "pong" {
		t.Fatalf("expected pong, got %s", got)
	}
}
