package memory

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

type materialStore struct {
	d *data
}

func (s *materialStore) List(ctx context.Context) ([]models.Material, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	materials := make([]models.Material, 0, len(s.d.materials))
	for _, m := range s.d.materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].Name < materials[j].Name })
	return materials, nil
}

func (s *materialStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Material, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	material, ok := s.d.materials[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &material, nil
}

func (s *materialStore) Create(ctx context.Context, material *models.Material) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now().UTC()
	material.ID = primitive.NewObjectID()
	material.CreatedAt = now
	material.UpdatedAt = now
	s.d.materials[material.ID] = *material
	return nil
}

func (s *materialStore) Update(ctx context.Context, id primitive.ObjectID, material *models.Material) (*models.Material, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.materials[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.Name = material.Name
	existing.Type = material.Type
	existing.Quantity = material.Quantity
	existing.Unit = material.Unit
	existing.Price = material.Price
	existing.Supplier = material.Supplier
	existing.Notes = material.Notes
	existing.UpdatedAt = time.Now().UTC()
	s.d.materials[id] = existing
	return &existing, nil
}

func (s *materialStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.materials[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.materials, id)
	return nil
}
