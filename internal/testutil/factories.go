package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/repository"
)

// BondBuilder provides a fluent interface for creating test bonds.
//
// The defaults describe a semi-annual 5% corporate bond: 10 bonds of 1000
// face value bought at par on 2024-06-15, maturing on 2029-06-15.
//
// Example usage:
//
//	// Simple creation with defaults
//	bond := testutil.NewBond().Build(t, db)
//
//	// Customized bond
//	bond := testutil.NewBond().
//	    WithCouponRate(0.03).
//	    WithFrequency(model.FrequencyQuarterly).
//	    Build(t, db)
type BondBuilder struct {
	bond model.Bond
}

// NewBond creates a BondBuilder with sensible defaults.
func NewBond() *BondBuilder {
	return &BondBuilder{
		bond: model.Bond{
			BondType:          model.BondTypeCorporate,
			IssuerName:        MakeIssuerName("Acme Corp"),
			CouponRate:        0.05,
			FaceValuePerBond:  1000,
			PurchasePrice:     1000,
			QuantityPurchased: 10,
			PaymentFrequency:  model.FrequencySemiAnnual,
			PurchaseDate:      time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			MaturityDate:      time.Date(2029, time.June, 15, 0, 0, 0, 0, time.UTC),
			Currency:          model.DefaultCurrency,
		},
	}
}

// WithType sets the bond type.
func (b *BondBuilder) WithType(t model.BondType) *BondBuilder {
	b.bond.BondType = t
	return b
}

// WithIssuer sets the issuer name.
func (b *BondBuilder) WithIssuer(name string) *BondBuilder {
	b.bond.IssuerName = name
	return b
}

// WithName sets the display name.
func (b *BondBuilder) WithName(name string) *BondBuilder {
	b.bond.Name = name
	return b
}

// WithISIN sets the ISIN.
func (b *BondBuilder) WithISIN(isin string) *BondBuilder {
	b.bond.ISIN = isin
	return b
}

// WithCouponRate sets the coupon rate as a fraction.
func (b *BondBuilder) WithCouponRate(rate float64) *BondBuilder {
	b.bond.CouponRate = rate
	return b
}

// WithFaceValue sets the face value per bond.
func (b *BondBuilder) WithFaceValue(face float64) *BondBuilder {
	b.bond.FaceValuePerBond = face
	return b
}

// WithPrice sets the absolute purchase price per bond.
func (b *BondBuilder) WithPrice(price float64) *BondBuilder {
	b.bond.PurchasePrice = price
	return b
}

// WithQuantity sets the number of bonds held.
func (b *BondBuilder) WithQuantity(qty int) *BondBuilder {
	b.bond.QuantityPurchased = qty
	return b
}

// WithFrequency sets the payment frequency.
func (b *BondBuilder) WithFrequency(f model.PaymentFrequency) *BondBuilder {
	b.bond.PaymentFrequency = f
	return b
}

// WithDates sets the purchase and maturity dates from YYYY-MM-DD strings.
func (b *BondBuilder) WithDates(t *testing.T, purchase, maturity string) *BondBuilder {
	t.Helper()
	b.bond.PurchaseDate = Date(t, purchase)
	b.bond.MaturityDate = Date(t, maturity)
	return b
}

// WithCurrency sets the currency code.
func (b *BondBuilder) WithCurrency(currency string) *BondBuilder {
	b.bond.Currency = currency
	return b
}

// WithNotes sets the free-text notes.
func (b *BondBuilder) WithNotes(notes string) *BondBuilder {
	b.bond.Notes = notes
	return b
}

// ZeroCoupon turns the bond into a zero-coupon bond.
func (b *BondBuilder) ZeroCoupon() *BondBuilder {
	b.bond.PaymentFrequency = model.FrequencyZeroCoupon
	b.bond.CouponRate = 0
	return b
}

// Value returns the bond without storing it, for pure calculation tests.
func (b *BondBuilder) Value() model.Bond {
	return b.bond
}

// Build stores the bond with plain-text notes and returns it with its ID set.
func (b *BondBuilder) Build(t *testing.T, db *sql.DB) model.Bond {
	t.Helper()
	return b.BuildWith(t, repository.NewBondRepository(db, nil))
}

// BuildWith stores the bond through repo, e.g. one with a notes cipher.
func (b *BondBuilder) BuildWith(t *testing.T, repo *repository.BondRepository) model.Bond {
	t.Helper()

	bond := b.bond
	if err := repo.InsertBond(context.Background(), &bond); err != nil {
		t.Fatalf("Failed to create test bond: %v", err)
	}
	return bond
}
