package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/metrics"
	"github.com/emilythestrangee/game-reviews/backend/internal/models"
	"github.com/emilythestrangee/game-reviews/backend/internal/repository"
)

// Listing defaults applied when the query parameter is absent.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
)

type ListReviewsParams struct {
	SortBy   string
	Order    string
	Category string
}

type ReviewService struct {
	reviews    ReviewRepository
	categories CategoryRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewReviewService(reviews ReviewRepository, categories CategoryRepository, m *metrics.Metrics, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews:    reviews,
		categories: categories,
		metrics:    m,
		logger:     logger,
	}
}

// ListReviews validates category, then sort, then order, and stops at the
// first failure.
func (s *ReviewService) ListReviews(ctx context.Context, params ListReviewsParams) ([]models.ReviewSummary, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	if params.Category != "" && !hasSlug(categories, params.Category) {
		return nil, apperror.BadRequest(apperror.MsgInvalidCategory)
	}
	if !repository.IsSortColumn(params.SortBy) {
		return nil, apperror.BadRequest(apperror.MsgInvalidSort)
	}
	if !repository.IsSortDirection(params.Order) {
		return nil, apperror.BadRequest(apperror.MsgInvalidOrder)
	}

	return s.reviews.FindAll(ctx, repository.ReviewQuery{
		SortBy:   params.SortBy,
		Order:    strings.ToUpper(params.Order),
		Category: params.Category,
	})
}

func hasSlug(categories []models.Category, slug string) bool {
	for _, c := range categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

func (s *ReviewService) GetReview(ctx context.Context, id int) (*models.ReviewDetail, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(apperror.MsgIDNotFound)
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateVotes checks the review exists before looking at the increment.
// Totals may go negative.
func (s *ReviewService) UpdateVotes(ctx context.Context, id int, incVote interface{}) (*models.Review, error) {
	if err := checkReviewExists(ctx, s.reviews, id); err != nil {
		return nil, err
	}

	inc, ok := voteIncrement(incVote)
	if !ok {
		return nil, apperror.BadRequest(apperror.MsgBadRequest)
	}

	review, err := s.reviews.IncrementVotes(ctx, id, inc)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// removed between the existence check and the update
		return nil, apperror.NotFound(apperror.MsgReviewNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.RecordVote(inc)
	s.logger.Debug("review votes updated",
		zap.Int("review_id", id),
		zap.Int("inc_vote", inc),
		zap.Int("votes", review.Votes),
	)
	return review, nil
}
