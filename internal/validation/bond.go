package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/request"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	isinPattern     = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)
	cusipPattern    = regexp.MustCompile(`^[A-Z0-9]{9}$`)
)

// ValidateCreateBond validates a bond creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - bondType: TREASURY, CORPORATE, MUNICIPAL or AGENCY
//   - issuerName: non-blank
//   - couponRate: fraction between 0 and 1 (5% is 0.05), 0 for ZERO_COUPON
//   - faceValuePerBond: positive
//   - purchasePrice or purchasePricePer100: exactly one, positive
//   - quantityPurchased: positive
//   - paymentFrequency: ANNUAL, SEMI_ANNUAL, QUARTERLY, MONTHLY or ZERO_COUPON
//   - purchaseDate, maturityDate: YYYY-MM-DD, maturity strictly after purchase
//
// Optional fields (validated if provided): currency, isin, cusip.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateBond(req request.CreateBondRequest) error {
	errors := make(map[string]string)

	if _, err := model.ParseBondType(req.BondType); err != nil {
		errors["bondType"] = err.Error()
	}
	if strings.TrimSpace(req.IssuerName) == "" {
		errors["issuerName"] = "issuer name is required"
	} else if len(req.IssuerName) > 200 {
		errors["issuerName"] = "issuer name must be 200 characters or less"
	}
	frequency, freqErr := model.ParsePaymentFrequency(req.PaymentFrequency)
	if freqErr != nil {
		errors["paymentFrequency"] = freqErr.Error()
	}

	validateCouponRate(errors, req.CouponRate)
	if freqErr == nil {
		validateZeroCoupon(errors, frequency, req.CouponRate)
	}

	if req.FaceValuePerBond <= 0 {
		errors["faceValuePerBond"] = "face value must be positive"
	}
	if req.QuantityPurchased <= 0 {
		errors["quantityPurchased"] = "quantity must be positive"
	}

	switch {
	case req.PurchasePrice == nil && req.PurchasePricePer100 == nil:
		errors["purchasePrice"] = "purchasePrice or purchasePricePer100 is required"
	case req.PurchasePrice != nil && req.PurchasePricePer100 != nil:
		errors["purchasePrice"] = "provide purchasePrice or purchasePricePer100, not both"
	case req.PurchasePrice != nil && *req.PurchasePrice <= 0:
		errors["purchasePrice"] = "purchase price must be positive"
	case req.PurchasePricePer100 != nil && *req.PurchasePricePer100 <= 0:
		errors["purchasePricePer100"] = "purchase price quote must be positive"
	}

	purchaseDate, purchaseErr := ParseDate(req.PurchaseDate)
	if purchaseErr != nil {
		errors["purchaseDate"] = purchaseErr.Error()
	}
	maturityDate, maturityErr := ParseDate(req.MaturityDate)
	if maturityErr != nil {
		errors["maturityDate"] = maturityErr.Error()
	}
	if purchaseErr == nil && maturityErr == nil && !maturityDate.After(purchaseDate) {
		errors["maturityDate"] = "maturity date must be after purchase date"
	}

	validateIdentifiers(errors, req.Currency, req.ISIN, req.CUSIP)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateBond validates a bond update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
// Cross-field rules (maturity after purchase) are checked on the merged bond by ValidateBond.
func ValidateUpdateBond(req request.UpdateBondRequest) error {
	errors := make(map[string]string)

	if req.BondType != nil {
		if _, err := model.ParseBondType(*req.BondType); err != nil {
			errors["bondType"] = err.Error()
		}
	}
	if req.IssuerName != nil && strings.TrimSpace(*req.IssuerName) == "" {
		errors["issuerName"] = "issuer name cannot be empty"
	}
	if req.PaymentFrequency != nil {
		if _, err := model.ParsePaymentFrequency(*req.PaymentFrequency); err != nil {
			errors["paymentFrequency"] = err.Error()
		}
	}
	if req.CouponRate != nil {
		validateCouponRate(errors, *req.CouponRate)
	}
	if req.FaceValuePerBond != nil && *req.FaceValuePerBond <= 0 {
		errors["faceValuePerBond"] = "face value must be positive"
	}
	if req.QuantityPurchased != nil && *req.QuantityPurchased <= 0 {
		errors["quantityPurchased"] = "quantity must be positive"
	}
	if req.PurchasePrice != nil && req.PurchasePricePer100 != nil {
		errors["purchasePrice"] = "provide purchasePrice or purchasePricePer100, not both"
	} else if req.PurchasePrice != nil && *req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	} else if req.PurchasePricePer100 != nil && *req.PurchasePricePer100 <= 0 {
		errors["purchasePricePer100"] = "purchase price quote must be positive"
	}
	if req.PurchaseDate != nil {
		if _, err := ParseDate(*req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}
	if req.MaturityDate != nil {
		if _, err := ParseDate(*req.MaturityDate); err != nil {
			errors["maturityDate"] = err.Error()
		}
	}

	validateIdentifiers(errors, deref(req.Currency), deref(req.ISIN), deref(req.CUSIP))

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateBond checks the invariants of a complete bond before it is stored.
func ValidateBond(b model.Bond) error {
	errors := make(map[string]string)

	if !b.BondType.Valid() {
		errors["bondType"] = fmt.Sprintf("invalid bond type: %s", b.BondType)
	}
	if !b.PaymentFrequency.Valid() {
		errors["paymentFrequency"] = fmt.Sprintf("invalid payment frequency: %s", b.PaymentFrequency)
	}
	if strings.TrimSpace(b.IssuerName) == "" {
		errors["issuerName"] = "issuer name is required"
	}
	validateCouponRate(errors, b.CouponRate)
	validateZeroCoupon(errors, b.PaymentFrequency, b.CouponRate)
	if b.FaceValuePerBond <= 0 {
		errors["faceValuePerBond"] = "face value must be positive"
	}
	if b.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	}
	if b.QuantityPurchased <= 0 {
		errors["quantityPurchased"] = "quantity must be positive"
	}
	if !b.MaturityDate.After(b.PurchaseDate) {
		errors["maturityDate"] = "maturity date must be after purchase date"
	}
	if !currencyPattern.MatchString(b.Currency) {
		errors["currency"] = "currency must be a 3-letter ISO code"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateCouponRate(errors map[string]string, rate float64) {
	switch {
	case rate < 0:
		errors["couponRate"] = "coupon rate cannot be negative"
	case rate > 1:
		errors["couponRate"] = fmt.Sprintf("coupon rate %v looks like a percentage; use a fraction (5%% is 0.05)", rate)
	}
}

// validateZeroCoupon rejects a coupon rate on a bond that pays no coupons.
func validateZeroCoupon(errors map[string]string, frequency model.PaymentFrequency, rate float64) {
	if frequency == model.FrequencyZeroCoupon && rate != 0 {
		if _, exists := errors["couponRate"]; !exists {
			errors["couponRate"] = "zero-coupon bonds must have a coupon rate of 0"
		}
	}
}

// validateIdentifiers checks the optional codes; empty values are skipped.
func validateIdentifiers(errors map[string]string, currency, isin, cusip string) {
	if currency != "" && !currencyPattern.MatchString(strings.ToUpper(currency)) {
		errors["currency"] = "currency must be a 3-letter ISO code"
	}
	if isin != "" && !isinPattern.MatchString(strings.ToUpper(isin)) {
		errors["isin"] = "isin must be 12 characters: country code, 9 alphanumerics and a check digit"
	}
	if cusip != "" && !cusipPattern.MatchString(strings.ToUpper(cusip)) {
		errors["cusip"] = "cusip must be 9 alphanumeric characters"
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
