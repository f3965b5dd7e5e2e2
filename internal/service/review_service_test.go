package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/models"
	"github.com/emilythestrangee/game-reviews/backend/internal/repository"
)

func assertAppError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, msg, appErr.Msg)
}

func TestReviewService_ListReviews(t *testing.T) {
	tests := []struct {
		name      string
		params    ListReviewsParams
		wantQuery *repository.ReviewQuery
		wantMsg   string
	}{
		{
			name:      "defaults",
			params:    ListReviewsParams{SortBy: DefaultSortBy, Order: DefaultOrder},
			wantQuery: &repository.ReviewQuery{SortBy: "created_at", Order: "DESC"},
		},
		{
			name:      "lower case order is normalised",
			params:    ListReviewsParams{SortBy: "votes", Order: "asc", Category: "dexterity"},
			wantQuery: &repository.ReviewQuery{SortBy: "votes", Order: "ASC", Category: "dexterity"},
		},
		{
			name:    "unknown category",
			params:  ListReviewsParams{SortBy: "votes", Order: "ASC", Category: "monopoly"},
			wantMsg: apperror.MsgInvalidCategory,
		},
		{
			name:    "injection in sort_by",
			params:  ListReviewsParams{SortBy: "; DROP TABLE reviews", Order: "ASC"},
			wantMsg: apperror.MsgInvalidSort,
		},
		{
			name:    "empty sort_by",
			params:  ListReviewsParams{SortBy: "", Order: "ASC"},
			wantMsg: apperror.MsgInvalidSort,
		},
		{
			name:    "bad order",
			params:  ListReviewsParams{SortBy: "title", Order: "sideways"},
			wantMsg: apperror.MsgInvalidOrder,
		},
		{
			name:    "category is reported before sort and order",
			params:  ListReviewsParams{SortBy: "nope", Order: "nope", Category: "monopoly"},
			wantMsg: apperror.MsgInvalidCategory,
		},
		{
			name:    "sort is reported before order",
			params:  ListReviewsParams{SortBy: "nope", Order: "nope"},
			wantMsg: apperror.MsgInvalidSort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *repository.ReviewQuery
			reviews := &MockReviewRepository{
				FindAllFunc: func(ctx context.Context, q repository.ReviewQuery) ([]models.ReviewSummary, error) {
					got = &q
					return []models.ReviewSummary{{ReviewID: 1}}, nil
				},
			}
			svc := NewReviewService(reviews, &MockCategoryRepository{}, nil, zap.NewNop())

			result, err := svc.ListReviews(context.Background(), tt.params)

			if tt.wantMsg != "" {
				assertAppError(t, err, http.StatusBadRequest, tt.wantMsg)
				assert.Nil(t, got, "no query may run after a validation failure")
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, 1)
			assert.Equal(t, tt.wantQuery, got)
		})
	}
}

func TestReviewService_ListReviews_CategoryLoadFails(t *testing.T) {
	dbErr := errors.New("connection refused")
	categories := &MockCategoryRepository{
		FindAllFunc: func(ctx context.Context) ([]models.Category, error) { return nil, dbErr },
	}
	svc := NewReviewService(&MockReviewRepository{}, categories, nil, zap.NewNop())

	_, err := svc.ListReviews(context.Background(), ListReviewsParams{SortBy: "title", Order: "ASC"})
	assert.ErrorIs(t, err, dbErr)
	_, isApp := apperror.As(err)
	assert.False(t, isApp)
}

func TestReviewService_GetReview(t *testing.T) {
	reviews := &MockReviewRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*models.ReviewDetail, error) {
			if id == 1 {
				return &models.ReviewDetail{Review: models.Review{ReviewID: 1}, CommentCount: 2}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewReviewService(reviews, &MockCategoryRepository{}, nil, zap.NewNop())

	review, err := svc.GetReview(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, review.CommentCount)

	_, err = svc.GetReview(context.Background(), 999999)
	assertAppError(t, err, http.StatusNotFound, apperror.MsgIDNotFound)
}

func TestReviewService_UpdateVotes(t *testing.T) {
	tests := []struct {
		name      string
		exists    bool
		incVote   interface{}
		wantInc   int
		wantCalls []string
		wantError *apperror.AppError
	}{
		{name: "positive", exists: true, incVote: float64(5), wantInc: 5, wantCalls: []string{"Exists", "IncrementVotes"}},
		{name: "negative", exists: true, incVote: float64(-3), wantInc: -3, wantCalls: []string{"Exists", "IncrementVotes"}},
		{name: "json number", exists: true, incVote: json.Number("2"), wantInc: 2, wantCalls: []string{"Exists", "IncrementVotes"}},
		{name: "string", exists: true, incVote: "x", wantCalls: []string{"Exists"}, wantError: apperror.BadRequest(apperror.MsgBadRequest)},
		{name: "missing", exists: true, incVote: nil, wantCalls: []string{"Exists"}, wantError: apperror.BadRequest(apperror.MsgBadRequest)},
		{name: "fractional", exists: true, incVote: 1.5, wantCalls: []string{"Exists"}, wantError: apperror.BadRequest(apperror.MsgBadRequest)},
		{name: "overflow", exists: true, incVote: 1e12, wantCalls: []string{"Exists"}, wantError: apperror.BadRequest(apperror.MsgBadRequest)},
		{name: "review missing wins over bad increment", exists: false, incVote: "x", wantCalls: []string{"Exists"}, wantError: apperror.NotFound(apperror.MsgReviewNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotInc int
			reviews := &MockReviewRepository{
				ExistsFunc: func(ctx context.Context, id int) (bool, error) { return tt.exists, nil },
				IncrementVotesFunc: func(ctx context.Context, id int, inc int) (*models.Review, error) {
					gotInc = inc
					return &models.Review{ReviewID: id, Votes: 10 + inc}, nil
				},
			}
			svc := NewReviewService(reviews, &MockCategoryRepository{}, nil, zap.NewNop())

			review, err := svc.UpdateVotes(context.Background(), 3, tt.incVote)

			assert.Equal(t, tt.wantCalls, reviews.calls)
			if tt.wantError != nil {
				assertAppError(t, err, tt.wantError.Status, tt.wantError.Msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInc, gotInc)
			assert.Equal(t, 10+tt.wantInc, review.Votes)
		})
	}
}

func TestVoteIncrement(t *testing.T) {
	n, ok := voteIncrement(float64(0))
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = voteIncrement(true)
	assert.False(t, ok)

	_, ok = voteIncrement(json.Number("abc"))
	assert.False(t, ok)

	_, ok = voteIncrement(map[string]interface{}{})
	assert.False(t, ok)
}
