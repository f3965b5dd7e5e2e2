package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
)

// SQLSTATE codes mapped to client errors.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
)

// ErrorHandler writes the last error a handler attached with c.Error.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := resolveError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}

		c.JSON(status, gin.H{"msg": msg})
	}
}

func resolveError(err error) (int, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNumericValueOutOfRange, pgNotNullViolation:
			return http.StatusBadRequest, apperror.MsgBadRequest
		case pgForeignKeyViolation:
			return http.StatusNotFound, apperror.MsgNotFound
		}
	}

	if appErr, ok := apperror.As(err); ok {
		return appErr.Status, appErr.Msg
	}

	return http.StatusInternalServerError, apperror.MsgInternal
}
