package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

func TestPortfolioHandler_Overview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	h := NewPortfolioHandler(svcs.Portfolio)
	testutil.NewBond().Build(t, db)

	t.Run("returns the overview", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Overview(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/overview?as_of=2025-01-01", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		overview := testutil.DecodeJSON[model.PortfolioOverview](t, w)
		if overview.BondCount != 1 || overview.TotalFaceValue != 10000 {
			t.Errorf("Unexpected overview: %+v", overview)
		}
		if overview.NextPayment == nil {
			t.Error("Expected next payment")
		}
	})

	t.Run("invalid as_of", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Overview(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/overview?as_of=x", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
