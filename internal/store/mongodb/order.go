package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

type orderStore struct {
	col       *mongo.Collection
	customers *mongo.Collection
	products  *mongo.Collection
}

func (s *orderStore) List(ctx context.Context) ([]models.Order, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	if err := s.populate(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []models.Order{order}
	if err := s.populate(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	now := time.Now().UTC()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}

	_, err := s.col.InsertOne(ctx, order)
	return err
}

func (s *orderStore) Update(ctx context.Context, id primitive.ObjectID, order *models.Order) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"customerId":  order.CustomerID,
		"items":       order.Items,
		"status":      order.Status,
		"totalAmount": order.TotalAmount,
		"notes":       order.Notes,
		"updatedAt":   time.Now().UTC(),
	}}

	var updated models.Order
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}

	var updated models.Order
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *orderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// populate joins the referenced customers and products in with two batched
// lookups. Dangling references stay nil.
func (s *orderStore) populate(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	customerIDs := make([]primitive.ObjectID, 0, len(orders))
	productIDs := make([]primitive.ObjectID, 0)
	for _, o := range orders {
		customerIDs = append(customerIDs, o.CustomerID)
		for _, it := range o.Items {
			productIDs = append(productIDs, it.ProductID)
		}
	}

	customersByID, err := findCustomers(ctx, s.customers, customerIDs)
	if err != nil {
		return err
	}
	productsByID, err := findProducts(ctx, s.products, productIDs)
	if err != nil {
		return err
	}

	for i := range orders {
		orders[i].Customer = customersByID[orders[i].CustomerID]
		for j := range orders[i].Items {
			orders[i].Items[j].Product = productsByID[orders[i].Items[j].ProductID]
		}
	}
	return nil
}

func findCustomers(ctx context.Context, col *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Customer, error) {
	byID := make(map[primitive.ObjectID]*models.Customer, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cur, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var customers []models.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}
	return byID, nil
}

func findProducts(ctx context.Context, col *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Product, error) {
	byID := make(map[primitive.ObjectID]*models.Product, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	cur, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}
