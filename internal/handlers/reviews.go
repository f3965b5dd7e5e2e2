package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/models"
	"github.com/emilythestrangee/game-reviews/backend/internal/service"
)

type ReviewHandler struct {
	reviews ReviewService
}

func NewReviewHandler(reviews ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// GetReviews lists reviews. An absent sort_by or order takes the default; a
// present but empty one is rejected.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	params := service.ListReviewsParams{
		SortBy:   c.DefaultQuery("sort_by", service.DefaultSortBy),
		Order:    c.DefaultQuery("order", service.DefaultOrder),
		Category: c.Query("category"),
	}

	reviews, err := h.reviews.ListReviews(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if reviews == nil {
		reviews = []models.ReviewSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetReview returns a single review with its comment count
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := paramID(c, "review_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.reviews.GetReview(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

type patchReviewRequest struct {
	IncVote interface{} `json:"inc_vote"`
}

// PatchReview adjusts a review's vote count by inc_vote
func (h *ReviewHandler) PatchReview(c *gin.Context) {
	id, err := paramID(c, "review_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	// an empty body still reaches the existence check
	var input patchReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperror.BadRequest(apperror.MsgBadRequest))
		return
	}

	review, err := h.reviews.UpdateVotes(c.Request.Context(), id, input.IncVote)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}
