package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusOnHold     = "On Hold"
)

type Project struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                    string             `bson:"name" json:"name"`
	Description             string             `bson:"description,omitempty" json:"description,omitempty"`
	Status                  string             `bson:"status" json:"status"`
	Materials               []MaterialRef      `bson:"materials" json:"materials"`
	EstimatedCompletionDate *time.Time         `bson:"estimatedCompletionDate,omitempty" json:"estimatedCompletionDate,omitempty"`
	ActualCompletionDate    *time.Time         `bson:"actualCompletionDate,omitempty" json:"actualCompletionDate,omitempty"`
	Notes                   string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ProjectMaterialInput struct {
	MaterialID string   `json:"materialId" binding:"required,mongodb"`
	Quantity   *float64 `json:"quantity" binding:"required,gte=0"`
}

// ProjectInput is the create/replace payload for a project. Status is
// optional and defaults to Planning.
type ProjectInput struct {
	Name                    string                 `json:"name" binding:"required"`
	Description             string                 `json:"description"`
	Status                  string                 `json:"status" binding:"omitempty,oneof=Planning 'In Progress' Completed 'On Hold'"`
	Materials               []ProjectMaterialInput `json:"materials" binding:"omitempty,dive"`
	EstimatedCompletionDate *time.Time             `json:"estimatedCompletionDate"`
	Notes                   string                 `json:"notes"`
}

type ProjectStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Planning 'In Progress' Completed 'On Hold'"`
}

func (in *ProjectInput) ToProject() *Project {
	materials := make([]MaterialRef, 0, len(in.Materials))
	for _, m := range in.Materials {
		id, _ := primitive.ObjectIDFromHex(m.MaterialID)
		materials = append(materials, MaterialRef{MaterialID: id, Quantity: *m.Quantity})
	}
	status := in.Status
	if status == "" {
		status = ProjectStatusPlanning
	}
	return &Project{
		Name:                    in.Name,
		Description:             in.Description,
		Status:                  status,
		Materials:               materials,
		EstimatedCompletionDate: in.EstimatedCompletionDate,
		Notes:                   in.Notes,
	}
}
