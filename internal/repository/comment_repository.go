package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// FindByReviewID returns the review's comments, newest first.
func (r *CommentRepository) FindByReviewID(ctx context.Context, reviewID int) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at DESC").
		Order("comment_id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for review %d: %w", reviewID, err)
	}
	return comments, nil
}

// Create inserts comment and fills in its generated id.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, &models.Comment{}, "comment_id", id)
}

// Delete returns gorm.ErrRecordNotFound when nothing was removed.
func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&models.Comment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
