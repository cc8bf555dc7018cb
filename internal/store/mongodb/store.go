// Package mongodb implements the store interfaces on top of a MongoDB
// database, one collection per entity.
package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	"leatherworking_backend/internal/store"
)

// Compile-time interface checks.
var (
	_ store.CustomerStore = (*customerStore)(nil)
	_ store.ProductStore  = (*productStore)(nil)
	_ store.MaterialStore = (*materialStore)(nil)
	_ store.OrderStore    = (*orderStore)(nil)
	_ store.ProjectStore  = (*projectStore)(nil)
)

type Store struct {
	Customers store.CustomerStore
	Products  store.ProductStore
	Materials store.MaterialStore
	Orders    store.OrderStore
	Projects  store.ProjectStore
}

func New(db *mongo.Database) *Store {
	customers := db.Collection("customers")
	products := db.Collection("products")
	materials := db.Collection("materials")

	return &Store{
		Customers: &customerStore{col: customers},
		Products:  &productStore{col: products},
		Materials: &materialStore{col: materials},
		Orders:    &orderStore{col: db.Collection("orders"), customers: customers, products: products},
		Projects:  &projectStore{col: db.Collection("projects"), materials: materials},
	}
}
