// Package calc is the bond calculation engine: coupon schedules, yields and
// the grouping of payments into calendar and summary views.
//
// Every function in this package is pure. Bonds are consumed by value, nothing
// is cached and no errors are returned: matured bonds, zero-coupon bonds and
// empty portfolios all resolve to zero or empty results.
package calc

import (
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// PaymentAmount returns the coupon paid on one payment date for the whole
// holding, rounded to two decimals. Zero-coupon bonds pay 0.
func PaymentAmount(bond model.Bond) float64 {
	return periodAmount(
		bond.FaceValuePerBond,
		bond.QuantityPurchased,
		bond.CouponRate,
		bond.PaymentFrequency.PaymentsPerYear(),
	)
}

// PaymentDates returns the coupon dates of bond strictly after asOf, up to
// and including the maturity date, in ascending order.
//
// Dates are anchored on the maturity date: candidate k is the maturity date
// moved back k coupon periods, each computed from the maturity date itself so
// the day of month never drifts after a short month. The purchase date plays
// no part, so two holdings of the same issue share one schedule.
func PaymentDates(bond model.Bond, asOf time.Time) []time.Time {
	step := bond.PaymentFrequency.MonthsPerPeriod()
	if step == 0 {
		return nil
	}

	asOf = Date(asOf)
	maturity := Date(bond.MaturityDate)
	if !maturity.After(asOf) {
		return nil
	}

	// Walk back from maturity to the last coupon date on or before asOf.
	k := 0
	for AddMonths(maturity, -k*step).After(asOf) {
		k++
	}

	dates := make([]time.Time, 0, k)
	for i := k - 1; i >= 0; i-- {
		dates = append(dates, AddMonths(maturity, -i*step))
	}
	return dates
}

// FuturePayments returns every coupon payment of bond after asOf through
// maturity, in chronological order. It is empty for zero-coupon bonds and
// bonds that matured on or before asOf.
func FuturePayments(bond model.Bond, asOf time.Time) []model.InterestPayment {
	dates := PaymentDates(bond, asOf)
	if len(dates) == 0 {
		return []model.InterestPayment{}
	}

	amount := PaymentAmount(bond)
	payments := make([]model.InterestPayment, len(dates))
	for i, d := range dates {
		payments[i] = model.InterestPayment{
			BondID:      bond.ID,
			BondName:    bond.DisplayName(),
			PaymentDate: d,
			Amount:      amount,
			Currency:    bond.Currency,
		}
	}
	return payments
}

// NextPayment returns the first payment of bond on or after asOf.
// The boolean is false when the bond has no remaining coupons.
func NextPayment(bond model.Bond, asOf time.Time) (model.InterestPayment, bool) {
	asOf = Date(asOf)
	for _, p := range FuturePayments(bond, asOf) {
		if !p.PaymentDate.Before(asOf) {
			return p, true
		}
	}
	return model.InterestPayment{}, false
}
