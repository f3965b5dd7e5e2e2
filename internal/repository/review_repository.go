package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

// reviewSortColumns maps every sortable name to the expression it orders by.
// Only these hardcoded expressions are ever interpolated into SQL.
var reviewSortColumns = map[string]string{
	"title":          "reviews.title",
	"designer":       "reviews.designer",
	"owner":          "reviews.owner",
	"review_img_url": "reviews.review_img_url",
	"review_body":    "reviews.review_body",
	"category":       "reviews.category",
	"created_at":     "reviews.created_at",
	"votes":          "reviews.votes",
	"comment_count":  "comment_count",
}

var sortDirections = map[string]string{
	"ASC":  "ASC",
	"DESC": "DESC",
}

// IsSortColumn reports whether name is on the review sort allow-list.
func IsSortColumn(name string) bool {
	_, ok := reviewSortColumns[name]
	return ok
}

// IsSortDirection reports whether dir is ASC or DESC, ignoring case.
func IsSortDirection(dir string) bool {
	_, ok := sortDirections[strings.ToUpper(dir)]
	return ok
}

// ReviewQuery selects and orders the review listing.
type ReviewQuery struct {
	SortBy   string
	Order    string
	Category string
}

const reviewSummaryColumns = `reviews.owner, reviews.title, reviews.review_id, reviews.category,
	reviews.review_img_url, reviews.created_at, reviews.designer, reviews.votes,
	CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count`

const reviewGroupBy = `GROUP BY reviews.review_id, reviews.owner, reviews.title, reviews.category,
	reviews.review_img_url, reviews.created_at, reviews.designer, reviews.votes, reviews.review_body`

// BuildReviewListQuery assembles the listing statement and its bind values.
func BuildReviewListQuery(q ReviewQuery) (string, []interface{}, error) {
	column, ok := reviewSortColumns[q.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort column %q", q.SortBy)
	}
	direction, ok := sortDirections[strings.ToUpper(q.Order)]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort direction %q", q.Order)
	}

	var sb strings.Builder
	args := make([]interface{}, 0, 1)

	sb.WriteString("SELECT ")
	sb.WriteString(reviewSummaryColumns)
	sb.WriteString("\nFROM reviews\nLEFT JOIN comments ON comments.review_id = reviews.review_id")

	if q.Category != "" {
		sb.WriteString("\nWHERE reviews.category = ?")
		args = append(args, q.Category)
	}

	sb.WriteString("\n")
	sb.WriteString(reviewGroupBy)
	fmt.Fprintf(&sb, "\nORDER BY %s %s, reviews.review_id ASC", column, direction)

	return sb.String(), args, nil
}

const reviewByIDQuery = `SELECT reviews.review_id, reviews.title, reviews.review_body, reviews.designer,
	reviews.review_img_url, reviews.votes, reviews.category, reviews.owner, reviews.created_at,
	CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
FROM reviews
LEFT JOIN comments ON comments.review_id = reviews.review_id
WHERE reviews.review_id = ?
` + reviewGroupBy

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindAll runs the listing query. The query must already be validated.
func (r *ReviewRepository) FindAll(ctx context.Context, q ReviewQuery) ([]models.ReviewSummary, error) {
	sql, args, err := BuildReviewListQuery(q)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.ReviewSummary, 0)
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// FindByID returns gorm.ErrRecordNotFound when no review has the id.
func (r *ReviewRepository) FindByID(ctx context.Context, id int) (*models.ReviewDetail, error) {
	var review models.ReviewDetail
	result := r.db.WithContext(ctx).Raw(reviewByIDQuery, id).Scan(&review)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to fetch review %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &review, nil
}

func (r *ReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, &models.Review{}, "review_id", id)
}

// IncrementVotes adds inc to the stored vote count and returns the updated
// row from the same statement, so a concurrent increment never shows up in
// the caller's result.
func (r *ReviewRepository) IncrementVotes(ctx context.Context, id int, inc int) (*models.Review, error) {
	var review models.Review
	result := r.db.WithContext(ctx).Model(&review).
		Clauses(clause.Returning{}).
		Where("review_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", inc))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update votes for review %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &review, nil
}
