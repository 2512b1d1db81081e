package calc

import (
	"math"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// Bisection parameters for the yield-to-maturity solver.
const (
	ytmLowerBound    = 0.0001 // 0.01%
	ytmUpperBound    = 1.0    // 100%
	ytmEpsilon       = 0.0001
	ytmMaxIterations = 100
)

// CouponRate returns the stated annual coupon rate as a fraction.
func CouponRate(bond model.Bond) float64 {
	return bond.CouponRate
}

// CurrentYield returns annual coupon income divided by the price paid for
// one bond. A non-positive purchase price or a bond without periodic coupons
// yields 0.
func CurrentYield(bond model.Bond) float64 {
	if bond.PurchasePrice <= 0 || !paysCoupons(bond) {
		return 0
	}
	return bond.FaceValuePerBond * bond.CouponRate / bond.PurchasePrice
}

// paysCoupons reports whether bond has periodic coupon cash flows.
func paysCoupons(bond model.Bond) bool {
	return bond.CouponRate != 0 && bond.PaymentFrequency.PaymentsPerYear() > 0
}

// NPV returns the net present value, per bond unit, of buying bond at its
// purchase price and holding it to maturity, discounted at annualRate.
//
// Every remaining coupon date is discounted at its fractional period offset,
// counted back from the redemption at years*ppy periods, so a partial first
// period still carries its coupon. NPV is strictly decreasing in annualRate
// for a positive face value and a non-negative coupon.
func NPV(bond model.Bond, annualRate float64, asOf time.Time) float64 {
	years := YearsToMaturity(asOf, bond.MaturityDate)
	ppy := bond.PaymentFrequency.PaymentsPerYear()
	if ppy == 0 {
		ppy = 1
	}
	coupons := 0
	if paysCoupons(bond) {
		coupons = len(PaymentDates(bond, asOf))
	}
	return npv(
		bond.FaceValuePerBond*bond.CouponRate/float64(ppy),
		bond.FaceValuePerBond,
		bond.PurchasePrice,
		annualRate/float64(ppy),
		years*float64(ppy),
		coupons,
	)
}

// npv discounts coupons paid one period apart, the last one at periods.
func npv(couponPerPeriod, face, price, ratePerPeriod, periods float64, coupons int) float64 {
	value := -price
	for i := 1; i <= coupons; i++ {
		offset := math.Max(periods-float64(coupons-i), 0)
		value += couponPerPeriod / math.Pow(1+ratePerPeriod, offset)
	}
	return value + face/math.Pow(1+ratePerPeriod, periods)
}

// YieldToMaturity returns the annual rate at which the discounted remaining
// cash flows of bond equal its purchase price.
//
// Bonds without periodic coupons use the closed form
// (face/price)^(1/years) - 1. Coupon bonds are solved by bisection over
// [0.0001, 1.0]; the search stops once the bracket is narrower than 0.0001 or
// after 100 iterations and returns the bracket midpoint either way.
// Matured bonds and bonds with a non-positive price yield 0.
func YieldToMaturity(bond model.Bond, asOf time.Time) float64 {
	if !Date(bond.MaturityDate).After(Date(asOf)) || bond.PurchasePrice <= 0 {
		return 0
	}
	years := YearsToMaturity(asOf, bond.MaturityDate)
	if years <= 0 {
		return 0
	}

	if !paysCoupons(bond) {
		return math.Pow(bond.FaceValuePerBond/bond.PurchasePrice, 1/years) - 1
	}
	return bisectYield(bond, asOf)
}

func bisectYield(bond model.Bond, asOf time.Time) float64 {
	lower, upper := ytmLowerBound, ytmUpperBound
	for i := 0; i < ytmMaxIterations && upper-lower > ytmEpsilon; i++ {
		mid := (lower + upper) / 2
		if NPV(bond, mid, asOf) > 0 {
			// Cash flows are worth more than the price: the yield is higher.
			lower = mid
		} else {
			upper = mid
		}
	}
	return (lower + upper) / 2
}

// TotalFaceValue returns the face value of the whole holding.
func TotalFaceValue(bond model.Bond) float64 {
	return bond.FaceValuePerBond * float64(bond.QuantityPurchased)
}

// TotalInvestment returns the amount paid for the whole holding.
func TotalInvestment(bond model.Bond) float64 {
	return bond.PurchasePrice * float64(bond.QuantityPurchased)
}

// AnnualCouponIncome returns the coupon income of the whole holding over one
// year. Zero-coupon bonds earn none.
func AnnualCouponIncome(bond model.Bond) float64 {
	if bond.PaymentFrequency.PaymentsPerYear() == 0 {
		return 0
	}
	return TotalFaceValue(bond) * bond.CouponRate
}

// Yield computes the requested metric for a single bond.
func Yield(bond model.Bond, yieldType model.YieldType, asOf time.Time) float64 {
	switch yieldType {
	case model.YieldCouponRate:
		return CouponRate(bond)
	case model.YieldCurrentYield:
		return CurrentYield(bond)
	case model.YieldYieldToMaturity:
		return YieldToMaturity(bond, asOf)
	default:
		return 0
	}
}

// weight returns the weight of bond in a portfolio average of yieldType:
// total face value for the coupon rate, total investment otherwise.
func weight(bond model.Bond, yieldType model.YieldType) float64 {
	if yieldType == model.YieldCouponRate {
		return TotalFaceValue(bond)
	}
	return TotalInvestment(bond)
}

// WeightedAverage returns the portfolio average of yieldType across bonds.
// An empty portfolio, or one whose weights sum to zero, averages to 0.
func WeightedAverage(bonds []model.Bond, yieldType model.YieldType, asOf time.Time) float64 {
	var totalWeight, weighted float64
	for _, b := range bonds {
		w := weight(b, yieldType)
		totalWeight += w
		weighted += Yield(b, yieldType, asOf) * w
	}
	if totalWeight <= 0 {
		return 0
	}
	return weighted / totalWeight
}

// AllYields returns the weighted average of every yield type.
func AllYields(bonds []model.Bond, asOf time.Time) map[model.YieldType]float64 {
	yields := make(map[model.YieldType]float64, len(model.YieldTypes))
	for _, t := range model.YieldTypes {
		yields[t] = WeightedAverage(bonds, t, asOf)
	}
	return yields
}

// BondYields returns every yield metric of a single bond.
func BondYields(bond model.Bond, asOf time.Time) model.BondYields {
	return model.BondYields{
		BondID:          bond.ID,
		CouponRate:      CouponRate(bond),
		CurrentYield:    CurrentYield(bond),
		YieldToMaturity: YieldToMaturity(bond, asOf),
		YearsToMaturity: YearsToMaturity(asOf, bond.MaturityDate),
	}
}
