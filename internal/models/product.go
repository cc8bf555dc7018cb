package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductImage struct {
	Key        string    `bson:"key" json:"key"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	Materials   []MaterialRef      `bson:"materials" json:"materials"`
	Images      []ProductImage     `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductMaterialInput requires at least one unit of a material per product.
type ProductMaterialInput struct {
	MaterialID string   `json:"materialId" binding:"required,mongodb"`
	Quantity   *float64 `json:"quantity" binding:"required,gte=1"`
}

// ProductInput is the create/replace payload for a product. Images are never
// part of the payload; they are attached through the upload endpoint.
type ProductInput struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Price       *float64               `json:"price" binding:"required,gte=0"`
	Category    string                 `json:"category"`
	Stock       *int                   `json:"stock" binding:"required,gte=0"`
	Materials   []ProductMaterialInput `json:"materials" binding:"omitempty,dive"`
}

func (in *ProductInput) ToProduct() *Product {
	materials := make([]MaterialRef, 0, len(in.Materials))
	for _, m := range in.Materials {
		// Ids were validated by the `mongodb` tag, the parse cannot fail.
		id, _ := primitive.ObjectIDFromHex(m.MaterialID)
		materials = append(materials, MaterialRef{MaterialID: id, Quantity: *m.Quantity})
	}
	return &Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Stock:       *in.Stock,
		Materials:   materials,
		Images:      []ProductImage{},
	}
}
