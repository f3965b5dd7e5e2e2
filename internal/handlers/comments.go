package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

type CommentHandler struct {
	comments CommentService
}

func NewCommentHandler(comments CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GetComments returns all comments for a review, newest first
func (h *CommentHandler) GetComments(c *gin.Context) {
	reviewID, err := paramID(c, "review_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.comments.ListByReview(c.Request.Context(), reviewID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment posts a comment on a review
func (h *CommentHandler) CreateComment(c *gin.Context) {
	reviewID, err := paramID(c, "review_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperror.BadRequest(apperror.MsgBadRequest))
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), reviewID, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment removes a comment by id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := paramID(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.comments.Delete(c.Request.Context(), commentID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
