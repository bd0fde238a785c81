package memory

import "marcenaria_gestao/internal/domain/entities"

// Snapshot returns a deep copy of every collection.
func (s *EntityStore) Snapshot() entities.Snapshot {
	st := s.load()
	return entities.Snapshot{
		Requests:        cloneAll(st.requests),
		Projects:        cloneAll(st.projects),
		Teams:           cloneAll(st.teams),
		Vehicles:        cloneAll(st.vehicles),
		SupplyOrders:    cloneAll(st.supplyOrders),
		LogisticsEvents: cloneAll(st.logisticsEvents),
	}
}

// Restore replaces the whole content of the store with snap. Ids inside snap
// are kept as they are and the id counter moves past the highest of them.
func (s *EntityStore) Restore(snap entities.Snapshot) {
	s.mutate(func(next *state) bool {
		s.observeIDs(snap)
		*next = state{
			requests:        cloneAll(snap.Requests),
			projects:        cloneAll(snap.Projects),
			teams:           cloneAll(snap.Teams),
			vehicles:        cloneAll(snap.Vehicles),
			supplyOrders:    cloneAll(snap.SupplyOrders),
			logisticsEvents: cloneAll(snap.LogisticsEvents),
		}
		return true
	})
}

func (s *EntityStore) observeIDs(snap entities.Snapshot) {
	for _, r := range snap.Requests {
		s.ids.observe(r.ID)
	}
	for _, p := range snap.Projects {
		s.ids.observe(p.ID)
		for _, u := range p.Updates {
			s.ids.observe(u.ID)
		}
	}
	for _, t := range snap.Teams {
		s.ids.observe(t.ID)
		for _, m := range t.MemberList {
			s.ids.observe(m.ID)
		}
	}
	for _, v := range snap.Vehicles {
		s.ids.observe(v.ID)
		for _, m := range v.MaintenanceHistory {
			s.ids.observe(m.ID)
		}
	}
	for _, o := range snap.SupplyOrders {
		s.ids.observe(o.ID)
	}
	for _, e := range snap.LogisticsEvents {
		s.ids.observe(e.ID)
	}
}
