package memory

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

type productStore struct {
	d *data
}

func (s *productStore) List(ctx context.Context) ([]models.Product, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	products := make([]models.Product, 0, len(s.d.products))
	for _, p := range s.d.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (s *productStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()

	product, ok := s.d.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &product, nil
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Images == nil {
		product.Images = []models.ProductImage{}
	}
	s.d.products[product.ID] = *product
	return nil
}

// Update leaves the image list alone, matching the mongodb $set.
func (s *productStore) Update(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category
	existing.Stock = product.Stock
	existing.Materials = product.Materials
	existing.UpdatedAt = time.Now().UTC()
	s.d.products[id] = existing
	return &existing, nil
}

func (s *productStore) AppendImage(ctx context.Context, id primitive.ObjectID, image models.ProductImage) (*models.Product, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	existing, ok := s.d.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	images := make([]models.ProductImage, 0, len(existing.Images)+1)
	images = append(images, existing.Images...)
	existing.Images = append(images, image)
	existing.UpdatedAt = time.Now().UTC()
	s.d.products[id] = existing
	return &existing, nil
}

func (s *productStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.products, id)
	return nil
}
