package memory

import (
	"slices"

	"marcenaria_gestao/internal/domain/entities"
)

func (s *EntityStore) Projects() []entities.Project {
	return cloneAll(s.load().projects)
}

func (s *EntityStore) GetProject(id string) (entities.Project, bool) {
	items := s.load().projects
	if i := indexOf(items, id); i >= 0 {
		return items[i].Clone(), true
	}
	return entities.Project{}, false
}

func (s *EntityStore) AddProject(in entities.NewProject) entities.Project {
	var created entities.Project
	s.mutate(func(next *state) bool {
		created = entities.Project{
			ID:              s.ids.next(prefixProject),
			Name:            in.Name,
			Client:          in.Client,
			Address:         in.Address,
			Status:          in.Status,
			TeamIDs:         slices.Clone(in.TeamIDs),
			StartDate:       in.StartDate,
			ExpectedEndDate: in.ExpectedEndDate,
			Description:     in.Description,
			Updates:         []entities.ProjectUpdate{},
		}
		next.projects = prepend(next.projects, created)
		return true
	})
	return created.Clone()
}

func (s *EntityStore) UpdateProject(id string, patch entities.ProjectPatch) (entities.Project, bool) {
	return s.updateProject(id, patch.ApplyTo)
}

func (s *EntityStore) UpdateProjectStatus(id string, status entities.ProjectStatus) (entities.Project, bool) {
	return s.updateProject(id, func(p entities.Project) entities.Project {
		p.Status = status
		return p
	})
}

func (s *EntityStore) DeleteProject(id string) bool {
	return s.mutate(func(next *state) bool {
		var found bool
		next.projects, found = remove(next.projects, id)
		return found
	})
}

// AddProjectUpdate puts a new entry at the front of the project's update log.
func (s *EntityStore) AddProjectUpdate(projectID string, in entities.NewProjectUpdate) (entities.Project, bool) {
	return s.updateProject(projectID, func(p entities.Project) entities.Project {
		entry := entities.ProjectUpdate{
			ID:          s.ids.next(prefixProjectUpdate),
			Date:        s.clock.next(),
			Author:      in.Author,
			Description: in.Description,
		}
		p.Updates = truncate(prepend(p.Updates, entry), s.historyLimit)
		return p
	})
}

func (s *EntityStore) updateProject(id string, change func(entities.Project) entities.Project) (entities.Project, bool) {
	var updated entities.Project
	ok := s.mutate(func(next *state) bool {
		var found bool
		next.projects, updated, found = update(next.projects, id, change)
		return found
	})
	return updated.Clone(), ok
}
