package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

type projectStore struct {
	d *data
}

func (s *projectStore) List(ctx context.Context) ([]models.Project, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.d.projects))
	for _, p := range s.d.projects {
		projects = append(projects, p)
	}
	sortByCreatedDesc(projects,
		func(p models.Project) int64 { return p.CreatedAt.UnixNano() },
		func(p models.Project) string { return p.ID.Hex() })
	s.populate(projects)
	return projects, nil
}

func (s *projectStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	project, ok := s.d.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	projects := []models.Project{project}
	s.populate(projects)
	return &projects[0], nil
}

func (s *projectStore) Create(ctx context.Context, project *models.Project) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now().UTC()
	project.ID = primitive.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Materials == nil {
		project.Materials = []models.MaterialRef{}
	}
	s.d.projects[project.ID] = *project
	return nil
}

func (s *projectStore) Update(ctx context.Context, id primitive.ObjectID, project *models.Project) (*models.Project, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.Name = project.Name
	existing.Description = project.Description
	existing.Status = project.Status
	existing.Materials = project.Materials
	existing.EstimatedCompletionDate = project.EstimatedCompletionDate
	existing.Notes = project.Notes
	existing.UpdatedAt = time.Now().UTC()
	s.d.projects[id] = existing

	projects := []models.Project{existing}
	s.populate(projects)
	return &projects[0], nil
}

func (s *projectStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, completedAt *time.Time) (*models.Project, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.Status = status
	if completedAt != nil {
		t := *completedAt
		existing.ActualCompletionDate = &t
	}
	existing.UpdatedAt = time.Now().UTC()
	s.d.projects[id] = existing

	projects := []models.Project{existing}
	s.populate(projects)
	return &projects[0], nil
}

func (s *projectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.projects, id)
	return nil
}

// populate expects the caller to hold at least the read lock.
func (s *projectStore) populate(projects []models.Project) {
	for i := range projects {
		materials := make([]models.MaterialRef, len(projects[i].Materials))
		copy(materials, projects[i].Materials)
		for j := range materials {
			if material, ok := s.d.materials[materials[j].MaterialID]; ok {
				m := material
				materials[j].Material = &m
			}
		}
		projects[i].Materials = materials
	}
}
