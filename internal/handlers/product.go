package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/services"
	"leatherworking_backend/internal/store"
	"leatherworking_backend/internal/validation"
)

// ProductHandler serves product CRUD plus the image upload and search
// endpoints. storage and index are optional collaborators: a nil storage
// disables uploads, a nil index makes search fall back to a store scan.
type ProductHandler struct {
	store   store.ProductStore
	storage services.ObjectStorage
	index   services.ProductIndex
}

func NewProductHandler(s store.ProductStore, storage services.ObjectStorage, index services.ProductIndex) *ProductHandler {
	return &ProductHandler{store: s, storage: storage, index: index}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	product, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error fetching product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	product := in.ToProduct()
	if err := h.store.Create(c.Request.Context(), product); err != nil {
		log.Println("❌ Error creating product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product"})
		return
	}

	h.reindex(*product)
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	product, err := h.store.Update(c.Request.Context(), id, in.ToProduct())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating product"})
		return
	}

	h.reindex(*product)
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	err = h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error deleting product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product"})
		return
	}

	if h.index != nil {
		go h.index.Remove(context.Background(), id.Hex())
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) reindex(product models.Product) {
	if h.index != nil {
		go h.index.Index(context.Background(), product)
	}
}
