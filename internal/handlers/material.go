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

type MaterialHandler struct {
	store store.MaterialStore
}

func NewMaterialHandler(s store.MaterialStore) *MaterialHandler {
	return &MaterialHandler{store: s}
}

func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching materials:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching materials"})
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}

	material, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error fetching material:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching material"})
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var in models.MaterialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	material := in.ToMaterial()
	if err := h.store.Create(c.Request.Context(), material); err != nil {
		log.Println("❌ Error creating material:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating material"})
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}

	var in models.MaterialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	material, err := h.store.Update(c.Request.Context(), id, in.ToMaterial())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating material:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating material"})
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}

	err = h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error deleting material:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting material"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}
