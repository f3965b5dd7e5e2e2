package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

type UserHandler struct {
	catalog CatalogService
}

func NewUserHandler(catalog CatalogService) *UserHandler {
	return &UserHandler{catalog: catalog}
}

// GetUsers returns every user
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.catalog.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
