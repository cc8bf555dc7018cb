package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

type orderStore struct {
	d *data
}

func (s *orderStore) List(ctx context.Context) ([]models.Order, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.d.orders))
	for _, o := range s.d.orders {
		orders = append(orders, o)
	}
	sortByCreatedDesc(orders,
		func(o models.Order) int64 { return o.CreatedAt.UnixNano() },
		func(o models.Order) string { return o.ID.Hex() })
	s.populate(orders)
	return orders, nil
}

func (s *orderStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	order, ok := s.d.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	orders := []models.Order{order}
	s.populate(orders)
	return &orders[0], nil
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now().UTC()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	s.d.orders[order.ID] = *order
	return nil
}

func (s *orderStore) Update(ctx context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.CustomerID = order.CustomerID
	existing.Items = order.Items
	existing.Status = order.Status
	existing.TotalAmount = order.TotalAmount
	existing.Notes = order.Notes
	existing.UpdatedAt = time.Now().UTC()
	s.d.orders[id] = existing
	return &existing, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()
	s.d.orders[id] = existing
	return &existing, nil
}

func (s *orderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.orders[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.orders, id)
	return nil
}

// populate expects the caller to hold at least the read lock.
func (s *orderStore) populate(orders []models.Order) {
	for i := range orders {
		if customer, ok := s.d.customers[orders[i].CustomerID]; ok {
			c := customer
			orders[i].Customer = &c
		}
		items := make([]models.OrderItem, len(orders[i].Items))
		copy(items, orders[i].Items)
		for j := range items {
			if product, ok := s.d.products[items[j].ProductID]; ok {
				p := product
				items[j].Product = &p
			}
		}
		orders[i].Items = items
	}
}
