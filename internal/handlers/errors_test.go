package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anonto42/foodgram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation", err: &services.ValidationError{Field: "tags", Message: "at least one tag is required"}, wantCode: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("recipe: %w", services.ErrNotFound), wantCode: http.StatusNotFound},
		{name: "permission", err: services.ErrPermissionDenied, wantCode: http.StatusForbidden},
		{name: "anything else", err: errors.New("disk full"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var he *echo.HTTPError
			if !errors.As(httpError(tt.err), &he) {
				t.Fatalf("httpError() did not return *echo.HTTPError")
			}
			if he.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", he.Code, tt.wantCode)
			}
		})
	}
}

func TestHTTPError_ValidationBody(t *testing.T) {
	he := httpError(&services.ValidationError{Field: "ingredients", Message: "amount of ingredient 3 must be at least 1"}).(*echo.HTTPError)
	body, ok := he.Message.(fieldErrors)
	if !ok {
		t.Fatalf("Message = %T, want fieldErrors", he.Message)
	}
	if msgs := body["ingredients"]; len(msgs) != 1 || msgs[0] != "amount of ingredient 3 must be at least 1" {
		t.Errorf("body = %v", body)
	}
}
