package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
)

func checkReviewExists(ctx context.Context, reviews ReviewRepository, id int) error {
	ok, err := reviews.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check review %d: %w", id, err)
	}
	if !ok {
		return apperror.NotFound(apperror.MsgReviewNotFound)
	}
	return nil
}

func checkUsernameExists(ctx context.Context, users UserRepository, username string) error {
	ok, err := users.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check username %q: %w", username, err)
	}
	if !ok {
		return apperror.NotFound(apperror.MsgUsernameNotFound)
	}
	return nil
}

func checkCommentExists(ctx context.Context, comments CommentRepository, id int) error {
	ok, err := comments.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check comment %d: %w", id, err)
	}
	if !ok {
		return apperror.NotFound(apperror.MsgCommentNotFound)
	}
	return nil
}

// voteIncrement accepts whole JSON numbers that fit in an int32.
func voteIncrement(v interface{}) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case int:
		f = float64(n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
