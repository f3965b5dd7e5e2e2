// Package apperror carries the status/message pairs that handlers surface to
// API clients unchanged.
package apperror

import (
	"errors"
	"net/http"
)

// AppError is a terminal request failure with the HTTP status it maps to.
type AppError struct {
	Status int
	Msg    string
}

func (e *AppError) Error() string {
	return e.Msg
}

// New creates an AppError with an explicit status.
func New(status int, msg string) *AppError {
	return &AppError{Status: status, Msg: msg}
}

// NotFound creates a 404 AppError.
func NotFound(msg string) *AppError {
	return New(http.StatusNotFound, msg)
}

// BadRequest creates a 400 AppError.
func BadRequest(msg string) *AppError {
	return New(http.StatusBadRequest, msg)
}

// As reports whether err carries an AppError anywhere in its chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Messages shared between the service layer and the router.
const (
	MsgBadRequest       = "Bad request"
	MsgIDNotFound       = "Id not found"
	MsgReviewNotFound   = "Review not found"
	MsgUsernameNotFound = "Username not found"
	MsgCommentNotFound  = "Comment not found"
	MsgInvalidCategory  = "Invalid category"
	MsgInvalidSort      = "Invalid sort query"
	MsgInvalidOrder     = "Invalid order query"
	MsgRouteNotFound    = "Route not found"
	MsgNotFound         = "Not found"
	MsgInternal         = "Internal server error"
)
