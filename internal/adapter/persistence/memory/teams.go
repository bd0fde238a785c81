package memory

import (
	"slices"

	"marcenaria_gestao/internal/domain/entities"
)

func (s *EntityStore) Teams() []entities.Team {
	return cloneAll(s.load().teams)
}

func (s *EntityStore) GetTeam(id string) (entities.Team, bool) {
	items := s.load().teams
	if i := indexOf(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return entities.Team{}, false
}

// AddTeam assigns ids to the initial roster entries that lack one.
func (s *EntityStore) AddTeam(in entities.NewTeam) entities.Team {
	var created entities.Team
	s.mutate(func(next *state) bool {
		members := make([]entities.TeamMember, 0, len(in.MemberList))
		for _, m := range in.MemberList {
			if m.ID == "" {
				m.ID = s.ids.next(prefixTeamMember)
			}
			members = append(members, m)
		}
		created = entities.Team{
			ID:         s.ids.next(prefixTeam),
			Name:       in.Name,
			Color:      in.Color,
			ProjectID:  in.ProjectID,
			Leader:     in.Leader,
			MemberList: members,
			Specialty:  in.Specialty,
		}
		next.teams = prepend(next.teams, created)
		return true
	})
	return created.Clone()
}

func (s *EntityStore) UpdateTeam(id string, patch entities.TeamPatch) (entities.Team, bool) {
	return s.updateTeam(id, patch.ApplyTo)
}

func (s *EntityStore) DeleteTeam(id string) bool {
	return s.mutate(func(next *state) bool {
		var found bool
		next.teams, found = remove(next.teams, id)
		return found
	})
}

// AddTeamMember appends a member to the roster. found is false when the team
// does not exist.
func (s *EntityStore) AddTeamMember(teamID string, in entities.NewTeamMember) (entities.Team, bool) {
	return s.updateTeam(teamID, func(t entities.Team) entities.Team {
		member := entities.TeamMember{
			ID:    s.ids.next(prefixTeamMember),
			Name:  in.Name,
			Role:  in.Role,
			Phone: in.Phone,
		}
		roster := make([]entities.TeamMember, 0, len(t.MemberList)+1)
		t.MemberList = append(append(roster, t.MemberList...), member)
		return t
	})
}

// RemoveTeamMember drops a member from the roster. found is false when either
// the team or the member does not exist; the store is left untouched then.
func (s *EntityStore) RemoveTeamMember(teamID, memberID string) (entities.Team, bool) {
	var updated entities.Team
	ok := s.mutate(func(next *state) bool {
		i := indexOf(next.teams, teamID)
		if i < 0 {
			return false
		}
		team := next.teams[i]
		j := slices.IndexFunc(team.MemberList, func(m entities.TeamMember) bool { return m.ID == memberID })
		if j < 0 {
			return false
		}
		roster := make([]entities.TeamMember, 0, len(team.MemberList)-1)
		roster = append(roster, team.MemberList[:j]...)
		team.MemberList = append(roster, team.MemberList[j+1:]...)

		teams := slices.Clone(next.teams)
		teams[i] = team
		next.teams = teams
		updated = team
		return true
	})
	return updated.Clone(), ok
}

func (s *EntityStore) updateTeam(id string, change func(entities.Team) entities.Team) (entities.Team, bool) {
	var updated entities.Team
	ok := s.mutate(func(next *state) bool {
		var found bool
		next.teams, updated, found = update(next.teams, id, change)
		return found
	})
	return updated.Clone(), ok
}
