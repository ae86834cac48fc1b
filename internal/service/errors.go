package service

import (
	"errors"
	"net/http"
)

// Error is a use-case failure that maps to an HTTP status. Message is safe to
// return to API clients.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error { return NewError(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return NewError(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error { return NewError(http.StatusForbidden, message) }
func NotFound(message string) *Error { return NewError(http.StatusNotFound, message) }
func Conflict(message string) *Error { return NewError(http.StatusConflict, message) }

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}
