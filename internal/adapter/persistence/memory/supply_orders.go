package memory

import "marcenaria_gestao/internal/domain/entities"

func (s *EntityStore) SupplyOrders() []entities.SupplyOrder {
	return cloneAll(s.load().supplyOrders)
}

func (s *EntityStore) GetSupplyOrder(id string) (entities.SupplyOrder, bool) {
	items := s.load().supplyOrders
	if i := indexOf(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return entities.SupplyOrder{}, false
}

func (s *EntityStore) AddSupplyOrder(in entities.NewSupplyOrder) entities.SupplyOrder {
	var created entities.SupplyOrder
	s.mutate(func(next *state) bool {
		now := s.clock.next()
		created = entities.SupplyOrder{
			ID:            s.ids.next(prefixSupplyOrder),
			ProjectID:     in.ProjectID,
			TeamID:        in.TeamID,
			RequestedBy:   in.RequestedBy,
			Origin:        in.Origin,
			Category:      in.Category,
			Item:          in.Item,
			Quantity:      in.Quantity,
			Unit:          in.Unit,
			Reason:        in.Reason,
			Priority:      in.Priority,
			Status:        in.Status,
			EstimatedCost: in.EstimatedCost,
			MediatorNotes: in.MediatorNotes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}.Clone()
		next.supplyOrders = prepend(next.supplyOrders, created)
		return true
	})
	return created.Clone()
}

func (s *EntityStore) UpdateSupplyOrder(id string, patch entities.SupplyOrderPatch) (entities.SupplyOrder, bool) {
	return s.updateSupplyOrder(id, patch.ApplyTo)
}

func (s *EntityStore) UpdateSupplyOrderStatus(id string, status entities.SupplyOrderStatus) (entities.SupplyOrder, bool) {
	return s.updateSupplyOrder(id, func(o entities.SupplyOrder) entities.SupplyOrder {
		o.Status = status
		return o
	})
}

func (s *EntityStore) DeleteSupplyOrder(id string) bool {
	return s.mutate(func(next *state) bool {
		var found bool
		next.supplyOrders, found = remove(next.supplyOrders, id)
		return found
	})
}

func (s *EntityStore) updateSupplyOrder(id string, change func(entities.SupplyOrder) entities.SupplyOrder) (entities.SupplyOrder, bool) {
	var updated entities.SupplyOrder
	ok := s.mutate(func(next *state) bool {
		var found bool
		next.supplyOrders, updated, found = update(next.supplyOrders, id, func(o entities.SupplyOrder) entities.SupplyOrder {
			floor := latest(o.CreatedAt, o.UpdatedAt)
			o = change(o)
			o.UpdatedAt = s.clock.nextAfter(floor)
			return o
		})
		return found
	})
	return updated.Clone(), ok
}
