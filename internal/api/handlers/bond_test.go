package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

func newTestBondHandler(t *testing.T) (*BondHandler, testutil.TestServices) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	return NewBondHandler(svcs.Bond, svcs.Interest, svcs.Yield), svcs
}

// fieldErrorResponse is an ErrorResponse whose details hold field errors.
type fieldErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

// TestBondHandler_CreateBond tests POST /api/bond.
//
// WHY: Field-level validation errors are the contract with the frontend form.
// They must come back as a 400 with one message per field, and valid bonds as 201.
func TestBondHandler_CreateBond(t *testing.T) {
	t.Run("creates a bond", func(t *testing.T) {
		// Setup
		h, _ := newTestBondHandler(t)
		body := map[string]any{
			"bondType":            "TREASURY",
			"issuerName":          "US Treasury",
			"couponRate":          0.0425,
			"faceValuePerBond":    1000,
			"purchasePricePer100": 99.5,
			"quantityPurchased":   3,
			"paymentFrequency":    "SEMI_ANNUAL",
			"purchaseDate":        "2024-02-15",
			"maturityDate":        "2034-02-15",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/bond", body, nil)
		w := httptest.NewRecorder()

		// Execute
		h.CreateBond(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		bond := testutil.DecodeJSON[model.Bond](t, w)
		if bond.ID == 0 || bond.PurchasePrice != 995 || bond.BondType != model.BondTypeTreasury {
			t.Errorf("Unexpected bond: %+v", bond)
		}
	})

	t.Run("returns field errors", func(t *testing.T) {
		h, _ := newTestBondHandler(t)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/bond",
			map[string]any{"bondType": "JUNK", "couponRate": 5}, nil)
		w := httptest.NewRecorder()

		h.CreateBond(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}
		resp := testutil.DecodeJSON[fieldErrorResponse](t, w)
		if resp.Error != "validation failed" {
			t.Errorf("Expected 'validation failed', got %q", resp.Error)
		}
		for _, field := range []string{"bondType", "couponRate", "issuerName"} {
			if _, ok := resp.Details[field]; !ok {
				t.Errorf("Expected error for %s, got %v", field, resp.Details)
			}
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		h, _ := newTestBondHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/bond", strings.NewReader(`{"coupon": 0.05}`))
		w := httptest.NewRecorder()

		h.CreateBond(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		h, _ := newTestBondHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/bond", strings.NewReader(`{`))
		w := httptest.NewRecorder()

		h.CreateBond(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestBondHandler_ReadUpdateDelete(t *testing.T) {
	t.Run("lists bonds", func(t *testing.T) {
		h, _ := newTestBondHandler(t)
		w := httptest.NewRecorder()

		h.Bonds(w, httptest.NewRequest(http.MethodGet, "/api/bond", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		bonds := testutil.DecodeJSON[[]model.Bond](t, w)
		if len(bonds) != 0 {
			t.Errorf("Expected empty list, got %d bonds", len(bonds))
		}
	})

	t.Run("gets a bond", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svcs := testutil.NewTestServices(t, db)
		h := NewBondHandler(svcs.Bond, svcs.Interest, svcs.Yield)
		bond := testutil.NewBond().Build(t, db)
		w := httptest.NewRecorder()

		h.GetBond(w, testutil.NewRequestWithURLParams(http.MethodGet, "/api/bond/1", idParam(bond.ID)))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		got := testutil.DecodeJSON[model.Bond](t, w)
		if got.ID != bond.ID || got.IssuerName != bond.IssuerName {
			t.Errorf("Expected bond %d, got %+v", bond.ID, got)
		}
	})

	t.Run("missing bond is 404", func(t *testing.T) {
		h, _ := newTestBondHandler(t)
		w := httptest.NewRecorder()

		h.GetBond(w, testutil.NewRequestWithURLParams(http.MethodGet, "/api/bond/99", idParam(99)))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("updates a bond", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svcs := testutil.NewTestServices(t, db)
		h := NewBondHandler(svcs.Bond, svcs.Interest, svcs.Yield)
		bond := testutil.NewBond().Build(t, db)
		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/bond/1",
			map[string]any{"notes": "callable from 2027"}, idParam(bond.ID))
		w := httptest.NewRecorder()

		h.UpdateBond(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		got := testutil.DecodeJSON[model.Bond](t, w)
		if got.Notes != "callable from 2027" {
			t.Errorf("Expected notes updated, got %q", got.Notes)
		}
	})

	t.Run("deletes a bond", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svcs := testutil.NewTestServices(t, db)
		h := NewBondHandler(svcs.Bond, svcs.Interest, svcs.Yield)
		bond := testutil.NewBond().Build(t, db)
		w := httptest.NewRecorder()

		h.DeleteBond(w, testutil.NewRequestWithURLParams(http.MethodDelete, "/api/bond/1", idParam(bond.ID)))

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		testutil.AssertRowCount(t, db, "bond", 0)
	})
}

// TestBondHandler_Calculations tests the per-bond calculation endpoints.
//
// WHY: These endpoints share ID and as_of parsing. A bad as_of must be a 400,
// and a bond with no coupon left must be a 404 on next-payment.
func TestBondHandler_Calculations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	h := NewBondHandler(svcs.Bond, svcs.Interest, svcs.Yield)
	bond := testutil.NewBond().Build(t, db)
	zero := testutil.NewBond().ZeroCoupon().Build(t, db)

	t.Run("payments", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Payments(w, testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/bond/1/payments?as_of=2025-01-01", idParam(bond.ID)))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		payments := testutil.DecodeJSON[[]model.InterestPayment](t, w)
		if len(payments) != 9 {
			t.Errorf("Expected 9 payments, got %d", len(payments))
		}
	})

	t.Run("next payment", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.NextPayment(w, testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/bond/1/next-payment?as_of=2025-01-01", idParam(bond.ID)))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		payment := testutil.DecodeJSON[model.InterestPayment](t, w)
		if payment.Amount != 250 || payment.PaymentDate.Format("2006-01-02") != "2025-06-15" {
			t.Errorf("Unexpected payment: %+v", payment)
		}
	})

	t.Run("next payment of zero-coupon bond is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.NextPayment(w, testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/bond/2/next-payment", idParam(zero.ID)))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("yields", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Yields(w, testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/bond/1/yields?as_of=2025-01-01", idParam(bond.ID)))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		yields := testutil.DecodeJSON[model.BondYields](t, w)
		if yields.BondID != bond.ID || yields.CouponRate != 0.05 {
			t.Errorf("Unexpected yields: %+v", yields)
		}
	})

	t.Run("invalid as_of is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Payments(w, testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/bond/1/payments?as_of=tomorrow", idParam(bond.ID)))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		resp := testutil.DecodeJSON[response.ErrorResponse](t, w)
		if resp.Error == "" {
			t.Error("Expected error message")
		}
	})
}
