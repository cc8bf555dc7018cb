package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Material struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	Quantity  float64            `bson:"quantity" json:"quantity"`
	Unit      string             `bson:"unit" json:"unit"`
	Price     float64            `bson:"price" json:"price"`
	Supplier  string             `bson:"supplier,omitempty" json:"supplier,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MaterialRef links a document to a material by id together with the quantity
// it consumes. The joined material is filled in on populated reads and stays
// nil when the referenced document no longer exists.
type MaterialRef struct {
	MaterialID primitive.ObjectID `bson:"materialId" json:"materialId"`
	Quantity   float64            `bson:"quantity" json:"quantity"`
	Material   *Material          `bson:"-" json:"material,omitempty"`
}

// MaterialInput is the create/replace payload for a material.
// Quantity and Price are pointers so a legitimate 0 passes `required`.
type MaterialInput struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Quantity *float64 `json:"quantity" binding:"required,gte=0"`
	Unit     string   `json:"unit" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Supplier string   `json:"supplier"`
	Notes    string   `json:"notes"`
}

func (in *MaterialInput) ToMaterial() *Material {
	return &Material{
		Name:     in.Name,
		Type:     in.Type,
		Quantity: *in.Quantity,
		Unit:     in.Unit,
		Price:    *in.Price,
		Supplier: in.Supplier,
		Notes:    in.Notes,
	}
}
