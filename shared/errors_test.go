package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"bad request", NewBadRequestError("bad"), http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound},
		{"conflict", NewConflictError("dupe"), http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("nope"), http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("denied"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.want {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.want)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.err.Message)
			}
		})
	}
}

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError("no student found with this email")

	got, ok := GetAppError(appErr)
	if !ok || got.StatusCode != http.StatusNotFound {
		t.Errorf("GetAppError() = %+v, %v", got, ok)
	}

	// Wrapped AppErrors still unwrap.
	wrapped := fmt.Errorf("handling request: %w", appErr)
	if _, ok := GetAppError(wrapped); !ok {
		t.Error("expected wrapped AppError to be found")
	}

	if _, ok := GetAppError(errors.New("plain")); ok {
		t.Error("plain error should not be an AppError")
	}
}

func TestDatabaseErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	dbErr := NewDatabaseError("query failed", cause, "GetUserByID")

	if !errors.Is(dbErr, cause) {
		t.Error("expected DatabaseError to unwrap to its cause")
	}
	if dbErr.Error() != "query failed: connection refused" {
		t.Errorf("Error() = %q", dbErr.Error())
	}
}
