package memory

import (
	"slices"

	"marcenaria_gestao/internal/domain/entities"
)

func (s *EntityStore) LogisticsEvents() []entities.LogisticsEvent {
	return cloneAll(s.load().logisticsEvents)
}

func (s *EntityStore) GetLogisticsEvent(id string) (entities.LogisticsEvent, bool) {
	items := s.load().logisticsEvents
	if i := indexOf(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return entities.LogisticsEvent{}, false
}

func (s *EntityStore) AddLogisticsEvent(in entities.NewLogisticsEvent) entities.LogisticsEvent {
	var created entities.LogisticsEvent
	s.mutate(func(next *state) bool {
		created = entities.LogisticsEvent{
			ID:            s.ids.next(prefixLogisticsEvent),
			Type:          in.Type,
			Status:        in.Status,
			ProjectID:     in.ProjectID,
			TeamID:        in.TeamID,
			VehicleID:     in.VehicleID,
			ScheduledDate: in.ScheduledDate,
			Title:         in.Title,
			Description:   in.Description,
			Items:         slices.Clone(in.Items),
			CreatedBy:     in.CreatedBy,
			CreatedAt:     s.clock.next(),
		}
		next.logisticsEvents = prepend(next.logisticsEvents, created)
		return true
	})
	return created.Clone()
}

func (s *EntityStore) UpdateLogisticsEvent(id string, patch entities.LogisticsEventPatch) (entities.LogisticsEvent, bool) {
	return s.updateLogisticsEvent(id, patch.ApplyTo)
}

func (s *EntityStore) UpdateLogisticsEventStatus(id string, status entities.LogisticsEventStatus) (entities.LogisticsEvent, bool) {
	return s.updateLogisticsEvent(id, func(e entities.LogisticsEvent) entities.LogisticsEvent {
		e.Status = status
		return e
	})
}

func (s *EntityStore) DeleteLogisticsEvent(id string) bool {
	return s.mutate(func(next *state) bool {
		var found bool
		next.logisticsEvents, found = remove(next.logisticsEvents, id)
		return found
	})
}

func (s *EntityStore) updateLogisticsEvent(id string, change func(entities.LogisticsEvent) entities.LogisticsEvent) (entities.LogisticsEvent, bool) {
	var updated entities.LogisticsEvent
	ok := s.mutate(func(next *state) bool {
		var found bool
		next.logisticsEvents, updated, found = update(next.logisticsEvents, id, change)
		return found
	})
	return updated.Clone(), ok
}
