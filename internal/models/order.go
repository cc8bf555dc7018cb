package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Product   *Product           `bson:"-" json:"product,omitempty"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID  primitive.ObjectID `bson:"customerId" json:"customerId"`
	Customer    *Customer          `bson:"-" json:"customer,omitempty"`
	Items       []OrderItem        `bson:"items" json:"items"`
	Status      string             `bson:"status" json:"status"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required,mongodb"`
	Quantity  *int   `json:"quantity" binding:"required,gte=1"`
}

// OrderInput is the create/replace payload for an order. Status is optional
// and defaults to Pending. Referenced ids are not checked for existence.
type OrderInput struct {
	CustomerID  string           `json:"customerId" binding:"required,mongodb"`
	Items       []OrderItemInput `json:"items" binding:"required,dive"`
	Status      string           `json:"status" binding:"omitempty,oneof=Pending Processing Completed Cancelled"`
	TotalAmount *float64         `json:"totalAmount" binding:"required,gte=0"`
	Notes       string           `json:"notes"`
}

type OrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Pending Processing Completed Cancelled"`
}

func (in *OrderInput) ToOrder() *Order {
	customerID, _ := primitive.ObjectIDFromHex(in.CustomerID)
	items := make([]OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		productID, _ := primitive.ObjectIDFromHex(it.ProductID)
		items = append(items, OrderItem{ProductID: productID, Quantity: *it.Quantity})
	}
	status := in.Status
	if status == "" {
		status = OrderStatusPending
	}
	return &Order{
		CustomerID:  customerID,
		Items:       items,
		Status:      status,
		TotalAmount: *in.TotalAmount,
		Notes:       in.Notes,
	}
}
