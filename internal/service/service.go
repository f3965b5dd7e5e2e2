// Package service validates request inputs in a fixed order and delegates to
// the repositories. Every failure it produces for a client is an
// *apperror.AppError; anything else is an infrastructure error.
package service

import (
	"context"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
	"github.com/emilythestrangee/game-reviews/backend/internal/repository"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type ReviewRepository interface {
	FindAll(ctx context.Context, q repository.ReviewQuery) ([]models.ReviewSummary, error)
	FindByID(ctx context.Context, id int) (*models.ReviewDetail, error)
	Exists(ctx context.Context, id int) (bool, error)
	IncrementVotes(ctx context.Context, id int, inc int) (*models.Review, error)
}

type CommentRepository interface {
	FindByReviewID(ctx context.Context, reviewID int) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Exists(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}
