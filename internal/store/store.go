// Package store defines the persistence seam between the HTTP handlers and
// the document store. The mongodb subpackage is the production
// implementation; memory backs the tests.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a document.
var ErrNotFound = errors.New("document not found")

type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id primitive.ObjectID, customer *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error)
	// AppendImage pushes one image onto the product's image list.
	AppendImage(ctx context.Context, id primitive.ObjectID, image models.ProductImage) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MaterialStore interface {
	List(ctx context.Context) ([]models.Material, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Material, error)
	Create(ctx context.Context, material *models.Material) error
	Update(ctx context.Context, id primitive.ObjectID, material *models.Material) (*models.Material, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderStore reads come back populated: the referenced customer and products
// are joined in, or left nil when the referenced document is gone.
type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProjectStore reads come back with materials populated. UpdateStatus sets
// actualCompletionDate when completedAt is non-nil and leaves the field
// untouched otherwise.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id primitive.ObjectID, project *models.Project) (*models.Project, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, completedAt *time.Time) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
