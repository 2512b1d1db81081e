package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

func TestInterestHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	h := NewInterestHandler(svcs.Interest)
	testutil.NewBond().Build(t, db)

	t.Run("schedule", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Schedule(w, httptest.NewRequest(http.MethodGet, "/api/interest/schedule?as_of=2025-01-01", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		payments := testutil.DecodeJSON[[]model.InterestPayment](t, w)
		if len(payments) != 9 {
			t.Errorf("Expected 9 payments, got %d", len(payments))
		}
	})

	t.Run("monthly", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Monthly(w, httptest.NewRequest(http.MethodGet, "/api/interest/monthly?as_of=2025-01-01", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		rows := testutil.DecodeJSON[[]model.MonthlyInterest](t, w)
		if len(rows) == 0 || rows[0].Year != 2025 || rows[0].Month != 6 {
			t.Errorf("Unexpected monthly rows: %+v", rows)
		}
	})

	t.Run("yearly", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Yearly(w, httptest.NewRequest(http.MethodGet, "/api/interest/yearly?as_of=2025-01-01", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		rows := testutil.DecodeJSON[[]model.YearlyInterest](t, w)
		if len(rows) != 5 || rows[0].Amount != 500 {
			t.Errorf("Unexpected yearly rows: %+v", rows)
		}
	})

	t.Run("calendar with explicit window", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Calendar(w, httptest.NewRequest(http.MethodGet,
			"/api/interest/calendar?from=2025-06-01&to=2025-06-30", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		days := testutil.DecodeJSON[[]model.CalendarDay](t, w)
		if len(days) != 1 || days[0].Date != "2025-06-15" || days[0].Total != 250 {
			t.Errorf("Unexpected calendar: %+v", days)
		}
	})

	t.Run("calendar defaults to a 30 day window", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Calendar(w, httptest.NewRequest(http.MethodGet, "/api/interest/calendar?from=2025-12-01", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		days := testutil.DecodeJSON[[]model.CalendarDay](t, w)
		if len(days) != 1 || days[0].Date != "2025-12-15" {
			t.Errorf("Unexpected calendar: %+v", days)
		}
	})

	t.Run("calendar rejects reversed window", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Calendar(w, httptest.NewRequest(http.MethodGet,
			"/api/interest/calendar?from=2025-06-30&to=2025-06-01", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("invalid as_of", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Monthly(w, httptest.NewRequest(http.MethodGet, "/api/interest/monthly?as_of=06/01/2025", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
