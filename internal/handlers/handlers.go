package handlers

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/metrics"
	"github.com/emilythestrangee/game-reviews/backend/internal/models"
	"github.com/emilythestrangee/game-reviews/backend/internal/service"
)

type ReviewService interface {
	ListReviews(ctx context.Context, params service.ListReviewsParams) ([]models.ReviewSummary, error)
	GetReview(ctx context.Context, id int) (*models.ReviewDetail, error)
	UpdateVotes(ctx context.Context, id int, incVote interface{}) (*models.Review, error)
}

type CommentService interface {
	ListByReview(ctx context.Context, reviewID int) ([]models.Comment, error)
	Create(ctx context.Context, reviewID int, req models.CreateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, commentID int) error
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// HealthChecker reports database reachability and pool usage.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
	Stats() sql.DBStats
}

// Handler combines all handler types
type Handler struct {
	Category *CategoryHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
	User     *UserHandler
	System   *SystemHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(reviews ReviewService, comments CommentService, catalog CatalogService, health HealthChecker, m *metrics.Metrics) *Handler {
	return &Handler{
		Category: NewCategoryHandler(catalog),
		Review:   NewReviewHandler(reviews),
		Comment:  NewCommentHandler(comments),
		User:     NewUserHandler(catalog),
		System:   NewSystemHandler(health, m),
	}
}

// paramID parses an integer path parameter. Ids are int4 columns, so values
// outside the int32 range are rejected here rather than by the driver.
func paramID(c *gin.Context, name string) (int, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperror.BadRequest(apperror.MsgBadRequest)
	}
	return int(id), nil
}
