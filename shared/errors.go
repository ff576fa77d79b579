package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a user-facing error carrying the HTTP status it should be
// rendered with. Anything that is not an AppError is treated as internal.
type AppError struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(statusCode int, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// DatabaseError wraps a storage failure with free-form context. The cause is
// logged and reported, never shown to the end user.
type DatabaseError struct {
	Message string
	Cause   error
	Context string
}

func (e *DatabaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DatabaseError) Unwrap() error {
	return e.Cause
}

func NewDatabaseError(message string, cause error, context string) *DatabaseError {
	return &DatabaseError{Message: message, Cause: cause, Context: context}
}
