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

type CustomerHandler struct {
	store store.CustomerStore
}

func NewCustomerHandler(s store.CustomerStore) *CustomerHandler {
	return &CustomerHandler{store: s}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching customers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	customer, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error fetching customer:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var in models.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	customer := in.ToCustomer()
	if err := h.store.Create(c.Request.Context(), customer); err != nil {
		log.Println("❌ Error creating customer:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	var in models.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	customer, err := h.store.Update(c.Request.Context(), id, in.ToCustomer())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating customer:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	err = h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error deleting customer:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
