package report_test

import (
	"strings"
	"testing"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/report"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/testutil"
)

func assertContains(t *testing.T, doc string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("Expected document to contain %q:\n%s", w, doc)
		}
	}
}

func TestBonds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assertContains(t, report.Bonds(nil), "# Bonds", "No bonds yet")
	})

	t.Run("table row per bond", func(t *testing.T) {
		b := testutil.NewBond().WithName("Acme | 2029").Value()
		b.ID = 3

		doc := report.Bonds([]model.Bond{b})

		assertContains(t, doc,
			"| ID | Name | Type |",
			"---:|",
			`| 3 | Acme \| 2029 | CORPORATE | 5.00% | SEMI_ANNUAL | 10 | $10,000.00 | 2029-06-15 |`,
		)
	})
}

func TestBond(t *testing.T) {
	asOf := testutil.Date(t, "2025-01-01")

	t.Run("details, yields and payments", func(t *testing.T) {
		b := testutil.NewBond().WithISIN("US0378331005").WithNotes("line one\nline two").Value()

		doc := report.Bond(b, calc.BondYields(b, asOf), calc.FuturePayments(b, asOf))

		assertContains(t, doc,
			"| ISIN | US0378331005 |",
			"| Notes | line one line two |",
			"## Yields",
			"| Coupon rate | 5.00% |",
			"| 2025-06-15 | $250.00 |",
			"| 2029-06-15 | $250.00 |",
		)
	})

	t.Run("zero-coupon bond has no payments", func(t *testing.T) {
		b := testutil.NewBond().ZeroCoupon().Value()

		doc := report.Bond(b, calc.BondYields(b, asOf), calc.FuturePayments(b, asOf))

		assertContains(t, doc, "No coupon payments remaining.")
	})
}

func TestSummaries(t *testing.T) {
	b := testutil.NewBond().WithName("Acme").Value()
	payments := calc.FuturePayments(b, testutil.Date(t, "2025-01-01"))

	t.Run("schedule", func(t *testing.T) {
		assertContains(t, report.Schedule(payments), "| 2025-06-15 | Acme | $250.00 |")
		assertContains(t, report.Schedule(nil), "No upcoming payments.")
	})

	t.Run("monthly", func(t *testing.T) {
		rows := calc.SortedMonthly(calc.MonthlySummary(payments))
		assertContains(t, report.Monthly(rows), "| 2025-06 | 250.00 |", "| 2029-06 | 250.00 |")
	})

	t.Run("yearly", func(t *testing.T) {
		rows := calc.SortedYearly(calc.YearlySummary(payments))
		assertContains(t, report.Yearly(rows), "| 2025 | 500.00 |", "| 2029 | 250.00 |")
	})

	t.Run("yields", func(t *testing.T) {
		doc := report.Yields(map[model.YieldType]float64{
			model.YieldCouponRate:      0.05,
			model.YieldCurrentYield:    0.0526,
			model.YieldYieldToMaturity: 0.061,
		})
		assertContains(t, doc, "| Coupon rate | 5.00% |", "| Current yield | 5.26% |", "| Yield to maturity | 6.10% |")
	})
}

func TestOverview(t *testing.T) {
	next := model.InterestPayment{
		BondName:    "Acme",
		PaymentDate: testutil.Date(t, "2025-06-15"),
		Amount:      250,
		Currency:    "USD",
	}
	o := model.PortfolioOverview{
		AsOf:                   "2025-01-01",
		BondCount:              2,
		TotalFaceValue:         15000,
		TotalInvestment:        14000,
		AnnualCouponIncome:     500,
		Yields:                 map[model.YieldType]float64{model.YieldCouponRate: 0.05},
		NextPayment:            &next,
		RemainingInterestTotal: 2250,
	}

	doc := report.Overview(o, "USD")

	assertContains(t, doc,
		"As of 2025-01-01, 2 bonds.",
		"| Face value | $15,000.00 |",
		"| Remaining interest | $2,250.00 |",
		"**Acme** pays $250.00 on 2025-06-15.",
	)

	o.NextPayment = nil
	assertContains(t, report.Overview(o, "USD"), "No upcoming payments.")
}
