package request

// CreateBondRequest represents the request body for adding a bond.
//
// CouponRate is a decimal fraction (0.05 for 5%). The price may be given either
// as PurchasePrice, the amount paid for one bond, or as PurchasePricePer100, a
// quote per 100 of face value; exactly one of the two is required.
type CreateBondRequest struct {
	BondType            string   `json:"bondType"`
	IssuerName          string   `json:"issuerName"`
	Name                string   `json:"name,omitempty"`
	ISIN                string   `json:"isin,omitempty"`
	CUSIP               string   `json:"cusip,omitempty"`
	CouponRate          float64  `json:"couponRate"`
	FaceValuePerBond    float64  `json:"faceValuePerBond"`
	PurchasePrice       *float64 `json:"purchasePrice,omitempty"`
	PurchasePricePer100 *float64 `json:"purchasePricePer100,omitempty"`
	QuantityPurchased   int      `json:"quantityPurchased"`
	PaymentFrequency    string   `json:"paymentFrequency"`
	PurchaseDate        string   `json:"purchaseDate"`
	MaturityDate        string   `json:"maturityDate"`
	Currency            string   `json:"currency,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

// UpdateBondRequest represents a partial bond update. Nil fields are left unchanged.
type UpdateBondRequest struct {
	BondType            *string  `json:"bondType,omitempty"`
	IssuerName          *string  `json:"issuerName,omitempty"`
	Name                *string  `json:"name,omitempty"`
	ISIN                *string  `json:"isin,omitempty"`
	CUSIP               *string  `json:"cusip,omitempty"`
	CouponRate          *float64 `json:"couponRate,omitempty"`
	FaceValuePerBond    *float64 `json:"faceValuePerBond,omitempty"`
	PurchasePrice       *float64 `json:"purchasePrice,omitempty"`
	PurchasePricePer100 *float64 `json:"purchasePricePer100,omitempty"`
	QuantityPurchased   *int     `json:"quantityPurchased,omitempty"`
	PaymentFrequency    *string  `json:"paymentFrequency,omitempty"`
	PurchaseDate        *string  `json:"purchaseDate,omitempty"`
	MaturityDate        *string  `json:"maturityDate,omitempty"`
	Currency            *string  `json:"currency,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}
