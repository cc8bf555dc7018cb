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

type projectStore struct {
	col       *mongo.Collection
	materials *mongo.Collection
}

func (s *projectStore) List(ctx context.Context) ([]models.Project, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0)
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	if err := s.populate(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *projectStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	projects := []models.Project{project}
	if err := s.populate(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func (s *projectStore) Create(ctx context.Context, project *models.Project) error {
	now := time.Now().UTC()
	project.ID = primitive.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Materials == nil {
		project.Materials = []models.MaterialRef{}
	}

	_, err := s.col.InsertOne(ctx, project)
	return err
}

func (s *projectStore) Update(ctx context.Context, id primitive.ObjectID, project *models.Project) (*models.Project, error) {
	update := bson.M{"$set": bson.M{
		"name":                    project.Name,
		"description":             project.Description,
		"status":                  project.Status,
		"materials":               project.Materials,
		"estimatedCompletionDate": project.EstimatedCompletionDate,
		"notes":                   project.Notes,
		"updatedAt":               time.Now().UTC(),
	}}

	var updated models.Project
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	projects := []models.Project{updated}
	if err := s.populate(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func (s *projectStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, completedAt *time.Time) (*models.Project, error) {
	set := bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}
	if completedAt != nil {
		set["actualCompletionDate"] = *completedAt
	}

	var updated models.Project
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	projects := []models.Project{updated}
	if err := s.populate(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func (s *projectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// populate joins the referenced materials in with one batched lookup.
func (s *projectStore) populate(ctx context.Context, projects []models.Project) error {
	ids := make([]primitive.ObjectID, 0)
	for _, p := range projects {
		for _, m := range p.Materials {
			ids = append(ids, m.MaterialID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cur, err := s.materials.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	var materials []models.Material
	if err := cur.All(ctx, &materials); err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]*models.Material, len(materials))
	for i := range materials {
		byID[materials[i].ID] = &materials[i]
	}

	for i := range projects {
		for j := range projects[i].Materials {
			projects[i].Materials[j].Material = byID[projects[i].Materials[j].MaterialID]
		}
	}
	return nil
}
