package memory

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

type customerStore struct {
	d *data
}

func (s *customerStore) List(ctx context.Context) ([]models.Customer, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	customers := make([]models.Customer, 0, len(s.d.customers))
	for _, c := range s.d.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

func (s *customerStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	customer, ok := s.d.customers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &customer, nil
}

func (s *customerStore) Create(ctx context.Context, customer *models.Customer) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now().UTC()
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	s.d.customers[customer.ID] = *customer
	return nil
}

func (s *customerStore) Update(ctx context.Context, id primitive.ObjectID, customer *models.Customer) (*models.Customer, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.customers[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.Name = customer.Name
	existing.Email = customer.Email
	existing.Phone = customer.Phone
	existing.Address = customer.Address
	existing.UpdatedAt = time.Now().UTC()
	s.d.customers[id] = existing
	return &existing, nil
}

func (s *customerStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.customers[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.customers, id)
	return nil
}
