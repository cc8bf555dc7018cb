package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
)

const presignedURLExpiry = time.Hour

// UploadImage stores one image for a product in the object store and appends
// {key, url, uploadedAt} to the product's image list. The product is checked
// before anything is sent to the external store.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	if _, err := h.store.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		log.Println("❌ Error fetching product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	if h.storage == nil {
		log.Println("⚠️ Image upload requested but no object storage is configured")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	key := fmt.Sprintf("products/%s/%s%s", id.Hex(), uuid.NewString(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	if err := h.storage.Upload(ctx, key, file, header.Size, contentType); err != nil {
		log.Println("❌ Error uploading image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	url, err := h.storage.PresignedURL(ctx, key, presignedURLExpiry)
	if err != nil {
		log.Println("❌ Error signing image URL:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	product, err := h.store.AppendImage(ctx, id, models.ProductImage{
		Key:        key,
		URL:        url,
		UploadedAt: time.Now().UTC(),
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error saving image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading image"})
		return
	}

	h.reindex(*product)
	c.JSON(http.StatusOK, product)
}
