package usecase

import (
	"context"
	"errors"
	"testing"

	"marcenaria_gestao/internal/domain/entities"
)

func validSupplyOrder() entities.NewSupplyOrder {
	return entities.NewSupplyOrder{
		ProjectID:   "prj-1",
		TeamID:      "team-1",
		RequestedBy: "Carlos",
		Origin:      entities.SupplyOriginObra,
		Category:    "Chapas",
		Item:        "MDF branco 18mm",
		Quantity:    10,
		Unit:        "chapa",
	}
}

func TestSupplyOrderUseCase_Create(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*entities.NewSupplyOrder)
		want   error
	}{
		{"missing item", func(in *entities.NewSupplyOrder) { in.Item = "" }, ErrInvalidSupplyOrderInput},
		{"zero quantity", func(in *entities.NewSupplyOrder) { in.Quantity = 0 }, ErrInvalidSupplyOrderInput},
		{"invalid origin", func(in *entities.NewSupplyOrder) { in.Origin = "deposito" }, ErrInvalidOrigin},
		{"invalid priority", func(in *entities.NewSupplyOrder) { in.Priority = "x" }, ErrInvalidPriority},
		{"invalid status", func(in *entities.NewSupplyOrder) { in.Status = "x" }, ErrInvalidSupplyOrderStatus},
		{"negative cost", func(in *entities.NewSupplyOrder) { in.EstimatedCost = ptr(-1.0) }, ErrInvalidEstimatedCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewSupplyOrderUseCase(newTestStore(), nil)
			in := validSupplyOrder()
			tc.mutate(&in)
			if _, err := uc.Create(ctx, in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		uc := NewSupplyOrderUseCase(newTestStore(), nil)
		o, err := uc.Create(ctx, validSupplyOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.SupplyOrderStatusPendente || o.Priority != entities.PriorityMedia || o.ID != "sup-101" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestSupplyOrderUseCase_Review(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	uc := NewSupplyOrderUseCase(newTestStore(), pub)
	o, _ := uc.Create(ctx, validSupplyOrder())

	if _, err := uc.Review(ctx, o.ID, SupplyOrderReview{}); !errors.Is(err, ErrInvalidSupplyOrderStatus) {
		t.Fatalf("expected ErrInvalidSupplyOrderStatus, got %v", err)
	}
	if _, err := uc.Review(ctx, "sup-404", SupplyOrderReview{Status: entities.SupplyOrderStatusAprovado}); !errors.Is(err, ErrSupplyOrderNotFound) {
		t.Fatalf("expected ErrSupplyOrderNotFound, got %v", err)
	}

	got, err := uc.Review(ctx, o.ID, SupplyOrderReview{
		Status:        entities.SupplyOrderStatusAprovado,
		EstimatedCost: ptr(1890.5),
		MediatorNotes: ptr("Comprar no fornecedor habitual"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.SupplyOrderStatusAprovado || got.EstimatedCost == nil || *got.EstimatedCost != 1890.5 {
		t.Fatalf("unexpected review result: %+v", got)
	}
	if got.MediatorNotes != "Comprar no fornecedor habitual" || got.Item != "MDF branco 18mm" {
		t.Fatalf("unexpected review result: %+v", got)
	}
	if !got.UpdatedAt.After(o.UpdatedAt) {
		t.Fatalf("expected updated_at to move forward")
	}
	if n := len(pub.events); n != 2 {
		t.Fatalf("expected 2 events, got %d", n)
	}
}

func TestSupplyOrderUseCase_ListAndStatus(t *testing.T) {
	ctx := context.Background()
	uc := NewSupplyOrderUseCase(newTestStore(), nil)
	a, _ := uc.Create(ctx, validSupplyOrder())
	b := validSupplyOrder()
	b.Origin = entities.SupplyOriginProducao
	b.Item = "Dobradiça 35mm"
	_, _ = uc.Create(ctx, b)

	byOrigin, _ := uc.List(ctx, SupplyOrderFilter{Origin: entities.SupplyOriginProducao})
	if len(byOrigin) != 1 {
		t.Fatalf("expected 1 order, got %d", len(byOrigin))
	}
	if _, err := uc.List(ctx, SupplyOrderFilter{Origin: "x"}); !errors.Is(err, ErrInvalidOrigin) {
		t.Fatalf("expected ErrInvalidOrigin, got %v", err)
	}
	byQuery, _ := uc.List(ctx, SupplyOrderFilter{Query: "mdf"})
	if len(byQuery) != 1 || byQuery[0].ID != a.ID {
		t.Fatalf("unexpected query result: %+v", byQuery)
	}

	got, err := uc.UpdateStatus(ctx, a.ID, entities.SupplyOrderStatusComprado)
	if err != nil || got.Status != entities.SupplyOrderStatusComprado {
		t.Fatalf("unexpected status: %+v err=%v", got, err)
	}
	if _, err := uc.Update(ctx, a.ID, entities.SupplyOrderPatch{Quantity: ptr(0.0)}); !errors.Is(err, ErrInvalidSupplyOrderInput) {
		t.Fatalf("expected ErrInvalidSupplyOrderInput, got %v", err)
	}
	if err := uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
