package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/middleware"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

// TestValidateBondIDMiddleware tests rejection of malformed bond IDs.
//
// WHY: Handlers behind this middleware assume a positive integer ID. Bad
// values must stop here with a 400 and never reach the database.
func TestValidateBondIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantCalled bool
	}{
		{"valid", "12", http.StatusOK, true},
		{"missing", "", http.StatusBadRequest, false},
		{"zero", "0", http.StatusBadRequest, false},
		{"negative", "-4", http.StatusBadRequest, false},
		{"not a number", "abc", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})
			params := map[string]string{"id": tt.id}
			if tt.id == "" {
				params = nil
			}
			req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/bond/x", params)
			w := httptest.NewRecorder()

			// Execute
			middleware.ValidateBondIDMiddleware(next).ServeHTTP(w, req)

			// Assert
			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if called != tt.wantCalled {
				t.Errorf("Expected next called=%v, got %v", tt.wantCalled, called)
			}
		})
	}
}
