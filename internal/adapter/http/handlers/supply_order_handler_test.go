package handlers

import (
	"net/http"
	"testing"

	"marcenaria_gestao/internal/adapter/http/handlers/mocks"
	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase"

	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

func TestSupplyOrderHandler_CreateSupplyOrder(t *testing.T) {
	t.Run("origin required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplyOrderUseCase(ctrl)
		h := NewSupplyOrderHandler(uc)

		w := serve(http.MethodPost, "/v1/supply-orders", h.CreateSupplyOrder, "/v1/supply-orders",
			`{"item":"MDF 18mm","quantity":4}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplyOrderUseCase(ctrl)
		h := NewSupplyOrderHandler(uc)

		w := serve(http.MethodPost, "/v1/supply-orders", h.CreateSupplyOrder, "/v1/supply-orders",
			`{"item":"MDF 18mm","quantity":-1,"origin":"obra"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplyOrderUseCase(ctrl)
		h := NewSupplyOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in entities.NewSupplyOrder) (entities.SupplyOrder, error) {
				if in.Origin != entities.SupplyOriginObra || in.Quantity != 4 {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.SupplyOrder{ID: "sup-1", Item: in.Item, Origin: in.Origin, Quantity: in.Quantity, Status: entities.SupplyOrderStatusPendente}, nil
			})

		w := serve(http.MethodPost, "/v1/supply-orders", h.CreateSupplyOrder, "/v1/supply-orders",
			`{"item":"MDF 18mm","quantity":4,"unit":"chapa","origin":"obra"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if gjson.Get(body, "status").String() != "pendente" || gjson.Get(body, "estimated_cost").Exists() {
			t.Fatalf("unexpected body %s", body)
		}
	})
}

func TestSupplyOrderHandler_ReviewSupplyOrder(t *testing.T) {
	t.Run("status required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplyOrderUseCase(ctrl)
		h := NewSupplyOrderHandler(uc)

		w := serve(http.MethodPatch, "/v1/supply-orders/:id/review", h.ReviewSupplyOrder, "/v1/supply-orders/sup-1/review",
			`{"estimated_cost":300}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approved with cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISupplyOrderUseCase(ctrl)
		h := NewSupplyOrderHandler(uc)

		uc.EXPECT().Review(gomock.Any(), "sup-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, review usecase.SupplyOrderReview) (entities.SupplyOrder, error) {
				if review.Status != entities.SupplyOrderStatusAprovado {
					t.Fatalf("expected aprovado, got %s", review.Status)
				}
				if review.EstimatedCost == nil || *review.EstimatedCost != 300 {
					t.Fatalf("expected cost 300, got %v", review.EstimatedCost)
				}
				if review.MediatorNotes == nil || *review.MediatorNotes != "comprar no fornecedor B" {
					t.Fatalf("unexpected notes %v", review.MediatorNotes)
				}
				return entities.SupplyOrder{ID: "sup-1", Status: review.Status, EstimatedCost: review.EstimatedCost, MediatorNotes: *review.MediatorNotes}, nil
			})

		w := serve(http.MethodPatch, "/v1/supply-orders/:id/review", h.ReviewSupplyOrder, "/v1/supply-orders/sup-1/review",
			`{"status":"aprovado","estimated_cost":300,"mediator_notes":"comprar no fornecedor B"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if gjson.Get(body, "estimated_cost").Float() != 300 || gjson.Get(body, "status").String() != "aprovado" {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrSupplyOrderNotFound, http.StatusNotFound, "SUPPLY_ORDER_NOT_FOUND"},
			{usecase.ErrInvalidSupplyOrderStatus, http.StatusBadRequest, "INVALID_STATUS"},
			{usecase.ErrInvalidEstimatedCost, http.StatusBadRequest, "INVALID_ESTIMATED_COST"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockISupplyOrderUseCase(ctrl)
			h := NewSupplyOrderHandler(uc)

			uc.EXPECT().Review(gomock.Any(), "sup-1", gomock.Any()).Return(entities.SupplyOrder{}, tc.err)

			w := serve(http.MethodPatch, "/v1/supply-orders/:id/review", h.ReviewSupplyOrder, "/v1/supply-orders/sup-1/review",
				`{"status":"recusado"}`)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			if got := gjson.Get(w.Body.String(), "code").String(); got != tc.code {
				t.Fatalf("%v: expected %s, got %s", tc.err, tc.code, got)
			}
		}
	})
}

func TestSupplyOrderHandler_ListSupplyOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISupplyOrderUseCase(ctrl)
	h := NewSupplyOrderHandler(uc)

	uc.EXPECT().List(gomock.Any(), usecase.SupplyOrderFilter{Origin: entities.SupplyOriginProducao, Status: entities.SupplyOrderStatusPendente}).
		Return([]entities.SupplyOrder{{ID: "sup-1"}}, nil)

	w := serve(http.MethodGet, "/v1/supply-orders", h.ListSupplyOrders, "/v1/supply-orders?origin=producao&status=pendente", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gjson.Get(w.Body.String(), "items.#").Int() != 1 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
