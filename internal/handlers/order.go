package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
	"leatherworking_backend/internal/validation"
)

type OrderHandler struct {
	store store.OrderStore
}

func NewOrderHandler(s store.OrderStore) *OrderHandler {
	return &OrderHandler{store: s}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching orders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	order, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error fetching order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	order := in.ToOrder()
	if err := h.store.Create(c.Request.Context(), order); err != nil {
		log.Println("❌ Error creating order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	order, err := h.store.Update(c.Request.Context(), id, in.ToOrder())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var in models.OrderStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	order, err := h.store.UpdateStatus(c.Request.Context(), id, in.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating order status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order status"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	err = h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error deleting order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
