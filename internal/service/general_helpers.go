package service

import "github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"

// round rounds a monetary value to two decimal places for API responses.
//
// Rounding is half-up on the decimal representation, so values that sit
// exactly on a half cent round away from zero even when their float64 form
// is a hair below it.
//
// Example:
//
//	round(123.456789)  // returns 123.46
//	round(0.005)       // returns 0.01
//	round(2.675)       // returns 2.68
func round(value float64) float64 {
	return calc.RoundAmount(value)
}
