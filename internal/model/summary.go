package model

import "time"

// YearMonth keys monthly interest sums.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Before reports whether ym sorts before other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// MonthlyInterest is one row of the monthly interest summary.
type MonthlyInterest struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// YearlyInterest is one row of the yearly interest summary.
type YearlyInterest struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

// CalendarDay groups the payments falling on one date.
type CalendarDay struct {
	Date     string            `json:"date"` // YYYY-MM-DD
	Total    float64           `json:"total"`
	Payments []InterestPayment `json:"payments"`
}

// BondYields holds the three yield metrics of a single bond.
type BondYields struct {
	BondID          int64   `json:"bondId"`
	CouponRate      float64 `json:"couponRate"`
	CurrentYield    float64 `json:"currentYield"`
	YieldToMaturity float64 `json:"yieldToMaturity"`
	YearsToMaturity float64 `json:"yearsToMaturity"`
}

// PortfolioOverview is the summary shown on the portfolio screen.
// Yields are portfolio-level weighted averages expressed as fractions.
// All monetary values are rounded to two decimal places.
type PortfolioOverview struct {
	AsOf                   string                `json:"asOf"`
	BondCount              int                   `json:"bondCount"`
	TotalFaceValue         float64               `json:"totalFaceValue"`
	TotalInvestment        float64               `json:"totalInvestment"`
	AnnualCouponIncome     float64               `json:"annualCouponIncome"`
	Yields                 map[YieldType]float64 `json:"yields"`
	NextPayment            *InterestPayment      `json:"nextPayment,omitempty"`
	RemainingInterestTotal float64               `json:"remainingInterestTotal"`
}
