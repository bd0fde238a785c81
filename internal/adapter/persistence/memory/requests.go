package memory

import (
	"slices"

	"marcenaria_gestao/internal/domain/entities"
)

func (s *EntityStore) Requests() []entities.Request {
	return cloneAll(s.load().requests)
}

func (s *EntityStore) GetRequest(id string) (entities.Request, bool) {
	items := s.load().requests
	if i := indexOf(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return entities.Request{}, false
}

func (s *EntityStore) AddRequest(in entities.NewRequest) entities.Request {
	var created entities.Request
	s.mutate(func(next *state) bool {
		now := s.clock.next()
		created = entities.Request{
			ID:          s.ids.next(prefixRequest),
			ProjectID:   in.ProjectID,
			TeamID:      in.TeamID,
			Type:        in.Type,
			Description: in.Description,
			Priority:    in.Priority,
			Deadline:    in.Deadline,
			Status:      in.Status,
			Attachments: slices.Clone(in.Attachments),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		next.requests = prepend(next.requests, created)
		return true
	})
	return created.Clone()
}

func (s *EntityStore) UpdateRequest(id string, patch entities.RequestPatch) (entities.Request, bool) {
	return s.updateRequest(id, patch.ApplyTo)
}

func (s *EntityStore) UpdateRequestStatus(id string, status entities.RequestStatus) (entities.Request, bool) {
	return s.updateRequest(id, func(r entities.Request) entities.Request {
		r.Status = status
		return r
	})
}

func (s *EntityStore) DeleteRequest(id string) bool {
	return s.mutate(func(next *state) bool {
		var found bool
		next.requests, found = remove(next.requests, id)
		return found
	})
}

func (s *EntityStore) updateRequest(id string, change func(entities.Request) entities.Request) (entities.Request, bool) {
	var updated entities.Request
	ok := s.mutate(func(next *state) bool {
		var found bool
		next.requests, updated, found = update(next.requests, id, func(r entities.Request) entities.Request {
			floor := latest(r.CreatedAt, r.UpdatedAt)
			r = change(r)
			r.UpdatedAt = s.clock.nextAfter(floor)
			return r
		})
		return found
	})
	return updated.Clone(), ok
}
