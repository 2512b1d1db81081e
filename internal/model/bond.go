package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCurrency is applied to bonds entered without an explicit currency.
const DefaultCurrency = "USD"

// BondType identifies the kind of issuer behind a bond.
type BondType string

// Supported bond types.
const (
	BondTypeTreasury  BondType = "TREASURY"
	BondTypeCorporate BondType = "CORPORATE"
	BondTypeMunicipal BondType = "MUNICIPAL"
	BondTypeAgency    BondType = "AGENCY"
)

// BondTypes lists every valid BondType in display order.
var BondTypes = []BondType{BondTypeTreasury, BondTypeCorporate, BondTypeMunicipal, BondTypeAgency}

// Valid reports whether t is one of the known bond types.
func (t BondType) Valid() bool {
	for _, v := range BondTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseBondType parses a bond type case-insensitively.
func ParseBondType(s string) (BondType, error) {
	t := BondType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown bond type %q", s)
	}
	return t, nil
}

// PaymentFrequency describes how often a bond pays its coupon.
type PaymentFrequency string

// Supported payment frequencies.
const (
	FrequencyAnnual     PaymentFrequency = "ANNUAL"
	FrequencySemiAnnual PaymentFrequency = "SEMI_ANNUAL"
	FrequencyQuarterly  PaymentFrequency = "QUARTERLY"
	FrequencyMonthly    PaymentFrequency = "MONTHLY"
	FrequencyZeroCoupon PaymentFrequency = "ZERO_COUPON"
)

// paymentsPerYear is the single source of truth for coupon counts per year.
// Unknown frequencies are absent and therefore map to 0.
var paymentsPerYear = map[PaymentFrequency]int{
	FrequencyAnnual:     1,
	FrequencySemiAnnual: 2,
	FrequencyQuarterly:  4,
	FrequencyMonthly:    12,
	FrequencyZeroCoupon: 0,
}

// PaymentsPerYear returns the number of coupon payments in a year.
// Zero-coupon and unknown frequencies return 0.
func (f PaymentFrequency) PaymentsPerYear() int {
	return paymentsPerYear[f]
}

// MonthsPerPeriod returns the months between two coupon dates, or 0 when
// the bond pays no periodic coupon.
func (f PaymentFrequency) MonthsPerPeriod() int {
	ppy := f.PaymentsPerYear()
	if ppy == 0 {
		return 0
	}
	return 12 / ppy
}

// Valid reports whether f is one of the known frequencies.
func (f PaymentFrequency) Valid() bool {
	_, ok := paymentsPerYear[f]
	return ok
}

// ParsePaymentFrequency parses a payment frequency case-insensitively.
// Hyphens are accepted in place of underscores ("semi-annual").
func ParsePaymentFrequency(s string) (PaymentFrequency, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	f := PaymentFrequency(normalized)
	if !f.Valid() {
		return "", fmt.Errorf("unknown payment frequency %q", s)
	}
	return f, nil
}

// Bond represents a single bond holding in the portfolio.
//
// Bond is a value type: it is passed and stored by value and never mutated
// by the calculation code, so a slice of bonds is a consistent snapshot.
//
// Conventions:
//   - CouponRate is a decimal fraction (0.05 means 5%).
//   - PurchasePrice is the absolute amount paid for one bond unit, in Currency.
//   - PurchaseDate and MaturityDate are calendar dates at midnight UTC.
type Bond struct {
	ID                int64            `json:"id"`
	BondType          BondType         `json:"bondType"`
	IssuerName        string           `json:"issuerName"`
	Name              string           `json:"name,omitempty"`
	ISIN              string           `json:"isin,omitempty"`
	CUSIP             string           `json:"cusip,omitempty"`
	CouponRate        float64          `json:"couponRate"`
	FaceValuePerBond  float64          `json:"faceValuePerBond"`
	PurchasePrice     float64          `json:"purchasePrice"`
	QuantityPurchased int              `json:"quantityPurchased"`
	PaymentFrequency  PaymentFrequency `json:"paymentFrequency"`
	PurchaseDate      time.Time        `json:"purchaseDate"`
	MaturityDate      time.Time        `json:"maturityDate"`
	Currency          string           `json:"currency"`
	Notes             string           `json:"notes,omitempty"`
}

// DisplayName returns the user-defined name, falling back to the issuer.
func (b Bond) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.IssuerName
}

// InterestPayment is a single computed coupon event for a bond.
// It is derived on demand and never persisted.
type InterestPayment struct {
	BondID      int64     `json:"bondId"`
	BondName    string    `json:"bondName"`
	PaymentDate time.Time `json:"paymentDate"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
}

// YieldType selects which yield metric to compute.
type YieldType string

// Supported yield metrics.
const (
	YieldCouponRate      YieldType = "COUPON_RATE"
	YieldCurrentYield    YieldType = "CURRENT_YIELD"
	YieldYieldToMaturity YieldType = "YIELD_TO_MATURITY"
)

// YieldTypes lists every YieldType.
var YieldTypes = []YieldType{YieldCouponRate, YieldCurrentYield, YieldYieldToMaturity}

// ParseYieldType parses a yield type case-insensitively and also accepts the
// short forms "coupon", "current" and "ytm".
func ParseYieldType(s string) (YieldType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(YieldCouponRate), "COUPON":
		return YieldCouponRate, nil
	case string(YieldCurrentYield), "CURRENT":
		return YieldCurrentYield, nil
	case string(YieldYieldToMaturity), "YTM":
		return YieldYieldToMaturity, nil
	default:
		return "", fmt.Errorf("unknown yield type %q", s)
	}
}
