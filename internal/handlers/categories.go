package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

type CategoryHandler struct {
	catalog CatalogService
}

func NewCategoryHandler(catalog CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// GetCategories returns every category
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
