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

type materialStore struct {
	col *mongo.Collection
}

func (s *materialStore) List(ctx context.Context) ([]models.Material, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	materials := make([]models.Material, 0)
	if err := cur.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (s *materialStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Material, error) {
	var material models.Material
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&material)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (s *materialStore) Create(ctx context.Context, material *models.Material) error {
	now := time.Now().UTC()
	material.ID = primitive.NewObjectID()
	material.CreatedAt = now
	material.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, material)
	return err
}

func (s *materialStore) Update(ctx context.Context, id primitive.ObjectID, material *models.Material) (*models.Material, error) {
	update := bson.M{"$set": bson.M{
		"name":      material.Name,
		"type":      material.Type,
		"quantity":  material.Quantity,
		"unit":      material.Unit,
		"price":     material.Price,
		"supplier":  material.Supplier,
		"notes":     material.Notes,
		"updatedAt": time.Now().UTC(),
	}}

	var updated models.Material
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

func (s *materialStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
