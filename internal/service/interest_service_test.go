package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

// TestInterestService_Schedule tests the portfolio schedule built from stored bonds.
//
// WHY: The default test bond pays 250 every 15 June and 15 December through
// 15 June 2029. As of 1 January 2025 that leaves nine coupons.
func TestInterestService_Schedule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	bond := testutil.NewBond().Build(t, db)
	asOf := testutil.Date(t, "2025-01-01")

	t.Run("lists every future coupon", func(t *testing.T) {
		payments, err := svcs.Interest.Schedule(context.Background(), asOf)

		if err != nil {
			t.Fatalf("Schedule() returned unexpected error: %v", err)
		}
		if len(payments) != 9 {
			t.Fatalf("Expected 9 payments, got %d", len(payments))
		}
		if got := payments[0].PaymentDate.Format("2006-01-02"); got != "2025-06-15" {
			t.Errorf("Expected first payment on 2025-06-15, got %s", got)
		}
		if got := payments[8].PaymentDate.Format("2006-01-02"); got != "2029-06-15" {
			t.Errorf("Expected last payment on maturity, got %s", got)
		}
		if payments[0].Amount != 250 || payments[0].BondID != bond.ID {
			t.Errorf("Unexpected first payment: %+v", payments[0])
		}
	})

	t.Run("excludes a coupon dated on asOf", func(t *testing.T) {
		payments, err := svcs.Interest.BondPayments(context.Background(), bond.ID, testutil.Date(t, "2025-06-15"))

		if err != nil {
			t.Fatalf("BondPayments() returned unexpected error: %v", err)
		}
		if len(payments) != 8 {
			t.Errorf("Expected 8 payments, got %d", len(payments))
		}
	})

	t.Run("next payment", func(t *testing.T) {
		next, err := svcs.Interest.NextPayment(context.Background(), bond.ID, asOf)

		if err != nil {
			t.Fatalf("NextPayment() returned unexpected error: %v", err)
		}
		if next.PaymentDate.Format("2006-01-02") != "2025-06-15" || next.Amount != 250 {
			t.Errorf("Unexpected next payment: %+v", next)
		}
	})

	t.Run("no next payment after maturity", func(t *testing.T) {
		_, err := svcs.Interest.NextPayment(context.Background(), bond.ID, testutil.Date(t, "2030-01-01"))

		if !errors.Is(err, apperrors.ErrNoUpcomingPayment) {
			t.Errorf("Expected ErrNoUpcomingPayment, got %v", err)
		}
	})

	t.Run("no next payment for zero-coupon bonds", func(t *testing.T) {
		zero := testutil.NewBond().ZeroCoupon().Build(t, db)

		_, err := svcs.Interest.NextPayment(context.Background(), zero.ID, asOf)

		if !errors.Is(err, apperrors.ErrNoUpcomingPayment) {
			t.Errorf("Expected ErrNoUpcomingPayment, got %v", err)
		}
	})

	t.Run("missing bond", func(t *testing.T) {
		_, err := svcs.Interest.BondPayments(context.Background(), 999, asOf)

		if !errors.Is(err, apperrors.ErrBondNotFound) {
			t.Errorf("Expected ErrBondNotFound, got %v", err)
		}
	})
}

func TestInterestService_Summaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	testutil.NewBond().Build(t, db)
	asOf := testutil.Date(t, "2025-01-01")

	t.Run("monthly", func(t *testing.T) {
		rows, err := svcs.Interest.Monthly(context.Background(), asOf)

		if err != nil {
			t.Fatalf("Monthly() returned unexpected error: %v", err)
		}
		if len(rows) != 9 {
			t.Fatalf("Expected 9 months, got %d", len(rows))
		}
		if rows[0].Year != 2025 || rows[0].Month != 6 || rows[0].Amount != 250 {
			t.Errorf("Unexpected first month: %+v", rows[0])
		}
		if rows[1].Year != 2025 || rows[1].Month != 12 {
			t.Errorf("Expected December 2025 second, got %+v", rows[1])
		}
	})

	t.Run("yearly", func(t *testing.T) {
		rows, err := svcs.Interest.Yearly(context.Background(), asOf)

		if err != nil {
			t.Fatalf("Yearly() returned unexpected error: %v", err)
		}
		want := map[int]float64{2025: 500, 2026: 500, 2027: 500, 2028: 500, 2029: 250}
		if len(rows) != len(want) {
			t.Fatalf("Expected %d years, got %+v", len(want), rows)
		}
		for i, row := range rows {
			if row.Amount != want[row.Year] {
				t.Errorf("Year %d: expected %v, got %v", row.Year, want[row.Year], row.Amount)
			}
			if i > 0 && rows[i-1].Year >= row.Year {
				t.Errorf("Expected ascending years, got %+v", rows)
			}
		}
	})
}

// TestInterestService_Calendar tests the inclusive calendar window.
//
// WHY: A calendar view starting on a coupon date must show that coupon, even
// though schedules themselves exclude their reference date.
func TestInterestService_Calendar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db)
	testutil.NewBond().Build(t, db)
	testutil.NewBond().WithQuantity(4).Build(t, db)

	t.Run("groups both bonds per date with inclusive bounds", func(t *testing.T) {
		days, err := svcs.Interest.Calendar(context.Background(),
			testutil.Date(t, "2025-06-15"), testutil.Date(t, "2025-12-15"))

		if err != nil {
			t.Fatalf("Calendar() returned unexpected error: %v", err)
		}
		if len(days) != 2 {
			t.Fatalf("Expected 2 days, got %+v", days)
		}
		if days[0].Date != "2025-06-15" || days[1].Date != "2025-12-15" {
			t.Errorf("Unexpected dates: %s, %s", days[0].Date, days[1].Date)
		}
		if len(days[0].Payments) != 2 || days[0].Total != 350 {
			t.Errorf("Expected two payments totalling 350, got %+v", days[0])
		}
	})

	t.Run("empty window", func(t *testing.T) {
		days, err := svcs.Interest.Calendar(context.Background(),
			testutil.Date(t, "2025-07-01"), testutil.Date(t, "2025-07-31"))

		if err != nil {
			t.Fatalf("Calendar() returned unexpected error: %v", err)
		}
		if len(days) != 0 {
			t.Errorf("Expected no days, got %+v", days)
		}
	})

	t.Run("rejects reversed range", func(t *testing.T) {
		_, err := svcs.Interest.Calendar(context.Background(),
			testutil.Date(t, "2025-12-31"), testutil.Date(t, "2025-01-01"))

		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}
