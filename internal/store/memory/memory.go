// Package memory implements the store interfaces in process memory. It backs
// the handler tests and mirrors the mongodb package's semantics: generated
// ObjectIDs, creation/update timestamps, $set-style replaces and populated
// reads with nil joins for dangling references.
package memory

import (
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

var (
	_ store.CustomerStore = (*customerStore)(nil)
	_ store.ProductStore  = (*productStore)(nil)
	_ store.MaterialStore = (*materialStore)(nil)
	_ store.OrderStore    = (*orderStore)(nil)
	_ store.ProjectStore  = (*projectStore)(nil)
)

type data struct {
	mu        sync.RWMutex
	customers map[primitive.ObjectID]models.Customer
	products  map[primitive.ObjectID]models.Product
	materials map[primitive.ObjectID]models.Material
	orders    map[primitive.ObjectID]models.Order
	projects  map[primitive.ObjectID]models.Project
}

type Store struct {
	Customers store.CustomerStore
	Products  store.ProductStore
	Materials store.MaterialStore
	Orders    store.OrderStore
	Projects  store.ProjectStore
}

func New() *Store {
	d := &data{
		customers: make(map[primitive.ObjectID]models.Customer),
		products:  make(map[primitive.ObjectID]models.Product),
		materials: make(map[primitive.ObjectID]models.Material),
		orders:    make(map[primitive.ObjectID]models.Order),
		projects:  make(map[primitive.ObjectID]models.Project),
	}
	return &Store{
		Customers: &customerStore{d: d},
		Products:  &productStore{d: d},
		Materials: &materialStore{d: d},
		Orders:    &orderStore{d: d},
		Projects:  &projectStore{d: d},
	}
}

// sortByCreatedDesc orders newest first. ObjectID hex breaks ties because ids
// generated by the same process are monotonically increasing.
func sortByCreatedDesc[T any](docs []T, createdAt func(T) int64, id func(T) string) {
	sort.Slice(docs, func(i, j int) bool {
		ci, cj := createdAt(docs[i]), createdAt(docs[j])
		if ci != cj {
			return ci > cj
		}
		return id(docs[i]) > id(docs[j])
	})
}
