// Package format renders amounts and rates for terminal and log output.
package format

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats amount in the conventions of currency, e.g. "$1,250.00" or
// "1.250,00 €". Unknown currency codes are formatted with two decimals.
func Money(amount float64, currency string) string {
	// money.New never returns a nil currency, unknown codes get defaults.
	cur := money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// Percent formats a fractional rate as a percentage with two decimals.
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
