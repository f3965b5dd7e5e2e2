package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/metrics"
	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

type CommentService struct {
	comments CommentRepository
	reviews  ReviewRepository
	users    UserRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

func NewCommentService(comments CommentRepository, reviews ReviewRepository, users UserRepository, m *metrics.Metrics, logger *zap.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		reviews:  reviews,
		users:    users,
		metrics:  m,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CommentService) ListByReview(ctx context.Context, reviewID int) ([]models.Comment, error) {
	if err := checkReviewExists(ctx, s.reviews, reviewID); err != nil {
		return nil, err
	}
	return s.comments.FindByReviewID(ctx, reviewID)
}

// Create checks the review, then the username, then the body, and inserts
// the comment with zero votes.
func (s *CommentService) Create(ctx context.Context, reviewID int, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := checkReviewExists(ctx, s.reviews, reviewID); err != nil {
		return nil, err
	}
	if err := checkUsernameExists(ctx, s.users, req.Username); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperror.BadRequest(apperror.MsgBadRequest)
	}

	comment := &models.Comment{
		ReviewID:  reviewID,
		Author:    req.Username,
		Body:      req.Body,
		Votes:     0,
		CreatedAt: s.now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.metrics.IncrementCommentCreated()
	s.logger.Info("comment created",
		zap.Int("comment_id", comment.CommentID),
		zap.Int("review_id", reviewID),
		zap.String("author", comment.Author),
	)
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID int) error {
	if err := checkCommentExists(ctx, s.comments, commentID); err != nil {
		return err
	}

	err := s.comments.Delete(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(apperror.MsgCommentNotFound)
	}
	if err != nil {
		return err
	}

	s.metrics.IncrementCommentDeleted()
	s.logger.Info("comment deleted", zap.Int("comment_id", commentID))
	return nil
}
