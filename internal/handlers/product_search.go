package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leatherworking_backend/internal/models"
)

// Search looks products up in Elasticsearch and falls back to scanning the
// store when the index is unavailable.
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing search query"})
		return
	}

	if h.index != nil {
		products, err := h.index.Search(c.Request.Context(), query)
		if err == nil {
			c.JSON(http.StatusOK, products)
			return
		}
		log.Println("⚠️ Elastic search failed, falling back to store scan:", err)
	}

	products, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error searching products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching products"})
		return
	}

	matches := make([]models.Product, 0)
	for _, p := range products {
		if containsIgnoreCase(p.Name, query) ||
			containsIgnoreCase(p.Description, query) ||
			containsIgnoreCase(p.Category, query) {
			matches = append(matches, p)
		}
	}
	c.JSON(http.StatusOK, matches)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
