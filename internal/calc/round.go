package calc

import "github.com/shopspring/decimal"

// RoundingPlaces is the precision of every monetary amount the engine emits.
const RoundingPlaces = 2

// RoundAmount rounds value to two decimal places, half away from zero, on
// its shortest decimal representation. 0.005 becomes 0.01 and 2.675 becomes
// 2.68, which plain math.Round(v*100)/100 gets wrong for some inputs.
func RoundAmount(value float64) float64 {
	return decimal.NewFromFloat(value).Round(RoundingPlaces).InexactFloat64()
}

// periodAmount computes face * quantity * rate / paymentsPerYear exactly and
// rounds the result to two places.
func periodAmount(face float64, quantity int, rate float64, paymentsPerYear int) float64 {
	if paymentsPerYear <= 0 {
		return 0
	}
	return decimal.NewFromFloat(face).
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromFloat(rate)).
		Div(decimal.NewFromInt(int64(paymentsPerYear))).
		Round(RoundingPlaces).
		InexactFloat64()
}
