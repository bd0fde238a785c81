package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase/interfaces"
)

var (
	ErrSupplyOrderNotFound      = errors.New("supply order not found")
	ErrInvalidSupplyOrderID     = errors.New("invalid supply order id")
	ErrInvalidSupplyOrderStatus = errors.New("invalid supply order status")
	ErrInvalidSupplyOrderInput  = errors.New("invalid supply order input")
	ErrInvalidOrigin            = errors.New("invalid supply origin")
	ErrInvalidEstimatedCost     = errors.New("invalid estimated cost")
)

type SupplyOrderFilter struct {
	Status    entities.SupplyOrderStatus
	Origin    entities.SupplyOrigin
	ProjectID string
	TeamID    string
	Query     string
}

// SupplyOrderReview is the mediator decision on an order.
type SupplyOrderReview struct {
	Status        entities.SupplyOrderStatus
	EstimatedCost *float64
	MediatorNotes *string
}

// ISupplyOrderUseCase exposes warehouse (almoxarifado) order operations.
type ISupplyOrderUseCase interface {
	List(ctx context.Context, filter SupplyOrderFilter) ([]entities.SupplyOrder, error)
	GetByID(ctx context.Context, id string) (entities.SupplyOrder, error)
	Create(ctx context.Context, in entities.NewSupplyOrder) (entities.SupplyOrder, error)
	Update(ctx context.Context, id string, patch entities.SupplyOrderPatch) (entities.SupplyOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.SupplyOrderStatus) (entities.SupplyOrder, error)
	Review(ctx context.Context, id string, review SupplyOrderReview) (entities.SupplyOrder, error)
	Delete(ctx context.Context, id string) error
}

type SupplyOrderUseCase struct {
	store    interfaces.ISupplyOrderStore
	notifier changeNotifier
}

var _ ISupplyOrderUseCase = (*SupplyOrderUseCase)(nil)

func NewSupplyOrderUseCase(store interfaces.ISupplyOrderStore, publisher interfaces.IEventPublisher) *SupplyOrderUseCase {
	return &SupplyOrderUseCase{store: store, notifier: newChangeNotifier(publisher)}
}

func (u *SupplyOrderUseCase) List(_ context.Context, filter SupplyOrderFilter) ([]entities.SupplyOrder, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidSupplyOrderStatus
	}
	if filter.Origin != "" && !filter.Origin.IsValid() {
		return nil, ErrInvalidOrigin
	}
	out := make([]entities.SupplyOrder, 0)
	for _, o := range u.store.SupplyOrders() {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Origin != "" && o.Origin != filter.Origin {
			continue
		}
		if !matchesID(filter.ProjectID, o.ProjectID) || !matchesID(filter.TeamID, o.TeamID) {
			continue
		}
		if !matchesQuery(filter.Query, o.Item, o.Category, o.RequestedBy, o.Reason) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (u *SupplyOrderUseCase) GetByID(_ context.Context, id string) (entities.SupplyOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderID
	}
	o, ok := u.store.GetSupplyOrder(id)
	if !ok {
		return entities.SupplyOrder{}, ErrSupplyOrderNotFound
	}
	return o, nil
}

func (u *SupplyOrderUseCase) Create(ctx context.Context, in entities.NewSupplyOrder) (entities.SupplyOrder, error) {
	in.Item = strings.TrimSpace(in.Item)
	if in.Item == "" || in.Quantity <= 0 {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderInput
	}
	if !in.Origin.IsValid() {
		return entities.SupplyOrder{}, ErrInvalidOrigin
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedia
	}
	if !in.Priority.IsValid() {
		return entities.SupplyOrder{}, ErrInvalidPriority
	}
	if in.Status == "" {
		in.Status = entities.SupplyOrderStatusPendente
	}
	if !in.Status.IsValid() {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderStatus
	}
	if in.EstimatedCost != nil && *in.EstimatedCost < 0 {
		return entities.SupplyOrder{}, ErrInvalidEstimatedCost
	}

	created := u.store.AddSupplyOrder(in)
	u.notifier.changed(ctx, entities.CollectionSupplyOrders, entities.OperationAdd, created.ID)
	return created, nil
}

func (u *SupplyOrderUseCase) Update(ctx context.Context, id string, patch entities.SupplyOrderPatch) (entities.SupplyOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderID
	}
	if err := validateSupplyOrderPatch(patch); err != nil {
		return entities.SupplyOrder{}, err
	}

	updated, ok := u.store.UpdateSupplyOrder(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionSupplyOrders, entities.OperationUpdate, id)
		return entities.SupplyOrder{}, ErrSupplyOrderNotFound
	}
	u.notifier.changed(ctx, entities.CollectionSupplyOrders, entities.OperationUpdate, id)
	return updated, nil
}

func validateSupplyOrderPatch(patch entities.SupplyOrderPatch) error {
	switch {
	case patch.Status != nil && !patch.Status.IsValid():
		return ErrInvalidSupplyOrderStatus
	case patch.Origin != nil && !patch.Origin.IsValid():
		return ErrInvalidOrigin
	case patch.Priority != nil && !patch.Priority.IsValid():
		return ErrInvalidPriority
	case patch.EstimatedCost != nil && *patch.EstimatedCost < 0:
		return ErrInvalidEstimatedCost
	case patch.Item != nil && strings.TrimSpace(*patch.Item) == "":
		return ErrInvalidSupplyOrderInput
	case patch.Quantity != nil && *patch.Quantity <= 0:
		return ErrInvalidSupplyOrderInput
	}
	return nil
}

func (u *SupplyOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.SupplyOrderStatus) (entities.SupplyOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderID
	}
	if !status.IsValid() {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderStatus
	}

	updated, ok := u.store.UpdateSupplyOrderStatus(id, status)
	if !ok {
		u.notifier.missed(entities.CollectionSupplyOrders, entities.OperationUpdateStatus, id)
		return entities.SupplyOrder{}, ErrSupplyOrderNotFound
	}
	u.notifier.changed(ctx, entities.CollectionSupplyOrders, entities.OperationUpdateStatus, id)
	return updated, nil
}

// Review records the mediator decision: status plus optional cost estimate
// and notes, applied as a single update.
func (u *SupplyOrderUseCase) Review(ctx context.Context, id string, review SupplyOrderReview) (entities.SupplyOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyOrder{}, ErrInvalidSupplyOrderID
	}
	status := review.Status
	patch := entities.SupplyOrderPatch{
		Status:        &status,
		EstimatedCost: review.EstimatedCost,
		MediatorNotes: review.MediatorNotes,
	}
	if err := validateSupplyOrderPatch(patch); err != nil {
		return entities.SupplyOrder{}, err
	}

	log.Printf("[supply_order][usecase] review start id=%s status=%s", id, status)
	updated, ok := u.store.UpdateSupplyOrder(id, patch)
	if !ok {
		u.notifier.missed(entities.CollectionSupplyOrders, entities.OperationUpdate, id)
		return entities.SupplyOrder{}, ErrSupplyOrderNotFound
	}
	u.notifier.changed(ctx, entities.CollectionSupplyOrders, entities.OperationUpdate, id)
	return updated, nil
}

func (u *SupplyOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSupplyOrderID
	}
	if !u.store.DeleteSupplyOrder(id) {
		u.notifier.missed(entities.CollectionSupplyOrders, entities.OperationDelete, id)
		return ErrSupplyOrderNotFound
	}
	u.notifier.changed(ctx, entities.CollectionSupplyOrders, entities.OperationDelete, id)
	return nil
}
