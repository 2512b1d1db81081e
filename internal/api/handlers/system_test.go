package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

// TestSystemHandler_Health tests the health endpoint.
//
// WHY: Container orchestration restarts the service on a non-200 health check,
// so a lost database must surface as 503.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		h := NewSystemHandler(testutil.NewTestSystemService(t, db))
		w := httptest.NewRecorder()

		h.Health(w, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		resp := testutil.DecodeJSON[HealthResponse](t, w)
		if resp.Status != "healthy" || resp.Database != "connected" {
			t.Errorf("Unexpected response: %+v", resp)
		}
	})

	t.Run("database closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		h := NewSystemHandler(testutil.NewTestSystemService(t, db))
		db.Close()
		w := httptest.NewRecorder()

		h.Health(w, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", w.Code)
		}
		resp := testutil.DecodeJSON[HealthResponse](t, w)
		if resp.Status != "unhealthy" || resp.Error == "" {
			t.Errorf("Unexpected response: %+v", resp)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewSystemHandler(testutil.NewTestSystemService(t, db))
	w := httptest.NewRecorder()

	h.Version(w, httptest.NewRequest(http.MethodGet, "/api/system/version", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	info := testutil.DecodeJSON[model.VersionInfo](t, w)
	if info.AppVersion == "" || info.DbVersion == "" || info.MigrationNeeded {
		t.Errorf("Unexpected version info: %+v", info)
	}
}
