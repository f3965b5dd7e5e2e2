package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return exists(ctx, r.db, &models.User{}, "username", username)
}
