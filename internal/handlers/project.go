package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leatherworking_backend/internal/models"
	"leatherworking_backend/internal/store"
	"leatherworking_backend/internal/validation"
)

type ProjectHandler struct {
	store store.ProjectStore
}

func NewProjectHandler(s store.ProjectStore) *ProjectHandler {
	return &ProjectHandler{store: s}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching projects:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	project, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error fetching project:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var in models.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	project := in.ToProject()
	if err := h.store.Create(c.Request.Context(), project); err != nil {
		log.Println("❌ Error creating project:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	var in models.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	project, err := h.store.Update(c.Request.Context(), id, in.ToProject())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating project:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateStatus patches the status field only. Moving a project to Completed
// stamps actualCompletionDate; any other status leaves the field untouched.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	var in models.ProjectStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Format(err)})
		return
	}

	var completedAt *time.Time
	if in.Status == models.ProjectStatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}

	project, err := h.store.UpdateStatus(c.Request.Context(), id, in.Status, completedAt)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error updating project status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating project status"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	err = h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		log.Println("❌ Error deleting project:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
