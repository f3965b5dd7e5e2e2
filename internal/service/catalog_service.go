package service

import (
	"context"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

// CatalogService serves the read-only category and user tables.
type CatalogService struct {
	categories CategoryRepository
	users      UserRepository
}

func NewCatalogService(categories CategoryRepository, users UserRepository) *CatalogService {
	return &CatalogService{categories: categories, users: users}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}
