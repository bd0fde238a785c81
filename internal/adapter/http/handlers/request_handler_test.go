package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"marcenaria_gestao/internal/adapter/http/handlers/mocks"
	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase"

	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

func TestRequestHandler_CreateRequest(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		w := serve(http.MethodPost, "/v1/requests", h.CreateRequest, "/v1/requests", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "code").String(); got != "INVALID_PAYLOAD" {
			t.Fatalf("expected INVALID_PAYLOAD, got %s", got)
		}
	})

	t.Run("bad deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		w := serve(http.MethodPost, "/v1/requests", h.CreateRequest, "/v1/requests",
			`{"description":"armario","deadline":"31/12/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		deadline := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in entities.NewRequest) (entities.Request, error) {
				if in.Description != "Armario de cozinha" {
					t.Fatalf("unexpected description %q", in.Description)
				}
				if !in.Deadline.Equal(deadline) {
					t.Fatalf("expected deadline %v, got %v", deadline, in.Deadline)
				}
				return entities.Request{ID: "req-1", Description: in.Description, Priority: entities.PriorityAlta, Status: entities.RequestStatusPendente, Deadline: in.Deadline}, nil
			})

		w := serve(http.MethodPost, "/v1/requests", h.CreateRequest, "/v1/requests",
			`{"description":"Armario de cozinha","priority":"alta","deadline":"2024-04-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if gjson.Get(body, "id").String() != "req-1" {
			t.Fatalf("unexpected body %s", body)
		}
		if gjson.Get(body, "deadline").String() != "2024-04-01" {
			t.Fatalf("expected deadline 2024-04-01, got %s", gjson.Get(body, "deadline").String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Request{}, usecase.ErrInvalidRequestStatus)

		w := serve(http.MethodPost, "/v1/requests", h.CreateRequest, "/v1/requests",
			`{"description":"Mesa","status":"arquivado"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "code").String(); got != "INVALID_STATUS" {
			t.Fatalf("expected INVALID_STATUS, got %s", got)
		}
	})
}

func TestRequestHandler_ListRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRequestUseCase(ctrl)
	h := NewRequestHandler(uc)

	uc.EXPECT().List(gomock.Any(), usecase.RequestFilter{Status: entities.RequestStatusEmAnalise, ProjectID: "proj-1", Query: "porta"}).
		Return([]entities.Request{{ID: "req-2"}, {ID: "req-1"}}, nil)

	w := serve(http.MethodGet, "/v1/requests", h.ListRequests, "/v1/requests?status=em_analise&project_id=proj-1&q=porta", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if gjson.Get(body, "total").Int() != 2 {
		t.Fatalf("expected total 2, got %s", body)
	}
	if gjson.Get(body, "items.0.id").String() != "req-2" {
		t.Fatalf("expected newest first, got %s", body)
	}
}

func TestRequestHandler_UpdateRequestStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		w := serve(http.MethodPatch, "/v1/requests/:id/status", h.UpdateRequestStatus, "/v1/requests/req-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "req-9", entities.RequestStatusFinalizado).Return(entities.Request{}, usecase.ErrRequestNotFound)

		w := serve(http.MethodPatch, "/v1/requests/:id/status", h.UpdateRequestStatus, "/v1/requests/req-9/status", `{"status":"finalizado"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "code").String(); got != "REQUEST_NOT_FOUND" {
			t.Fatalf("expected REQUEST_NOT_FOUND, got %s", got)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusEmProducao).
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusEmProducao}, nil)

		w := serve(http.MethodPatch, "/v1/requests/:id/status", h.UpdateRequestStatus, "/v1/requests/req-1/status", `{"status":"em_producao"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "status").String(); got != "em_producao" {
			t.Fatalf("expected em_producao, got %s", got)
		}
	})
}

func TestRequestHandler_DeleteRequest(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "req-1").Return(nil)

		w := serve(http.MethodDelete, "/v1/requests/:id", h.DeleteRequest, "/v1/requests/req-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "req-1").Return(errors.New("boom"))

		w := serve(http.MethodDelete, "/v1/requests/:id", h.DeleteRequest, "/v1/requests/req-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if got := gjson.Get(w.Body.String(), "code").String(); got != "INTERNAL_ERROR" {
			t.Fatalf("expected INTERNAL_ERROR, got %s", got)
		}
	})
}
