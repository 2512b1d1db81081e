package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/request"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/repository"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/validation"
)

// loadBondsKey is the singleflight key for loading the full bond list.
const loadBondsKey = "bonds"

// BondService handles bond-related business logic operations.
// It owns the conversion of API requests into bonds and is the single source
// of bond snapshots for the calculation services.
type BondService struct {
	bondRepo *repository.BondRepository
	loads    singleflight.Group
}

// NewBondService creates a new BondService with the provided repository dependency.
func NewBondService(bondRepo *repository.BondRepository) *BondService {
	return &BondService{
		bondRepo: bondRepo,
	}
}

// GetBonds returns a snapshot of every bond in the portfolio.
//
// Concurrent callers share one database read. The shared read ignores the
// cancellation of whichever caller started it, so one aborted request cannot
// fail the others. Each caller receives its own copy of the slice, so callers
// may reorder or filter it freely.
func (s *BondService) GetBonds(ctx context.Context) ([]model.Bond, error) {
	v, err, _ := s.loads.Do(loadBondsKey, func() (any, error) {
		return s.bondRepo.GetBonds(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveBonds, err)
	}
	return slices.Clone(v.([]model.Bond)), nil
}

// GetBond retrieves a single bond by ID.
// Returns apperrors.ErrBondNotFound when the bond does not exist.
func (s *BondService) GetBond(ctx context.Context, id int64) (model.Bond, error) {
	bond, err := s.bondRepo.GetBond(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBondNotFound) {
			return model.Bond{}, err
		}
		return model.Bond{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveBond, err)
	}
	return bond, nil
}

// CreateBond validates a request, builds the bond and stores it.
// Validation failures are returned as *validation.Error.
//
// The purchase price is resolved once here: a per-100 quote is converted to
// the absolute amount paid per bond. The stored bond is returned with its ID.
func (s *BondService) CreateBond(ctx context.Context, req request.CreateBondRequest) (model.Bond, error) {
	if err := validation.ValidateCreateBond(req); err != nil {
		return model.Bond{}, err
	}

	bondType, err := model.ParseBondType(req.BondType)
	if err != nil {
		return model.Bond{}, err
	}
	frequency, err := model.ParsePaymentFrequency(req.PaymentFrequency)
	if err != nil {
		return model.Bond{}, err
	}
	purchaseDate, err := validation.ParseDate(req.PurchaseDate)
	if err != nil {
		return model.Bond{}, err
	}
	maturityDate, err := validation.ParseDate(req.MaturityDate)
	if err != nil {
		return model.Bond{}, err
	}

	bond := model.Bond{
		BondType:          bondType,
		IssuerName:        strings.TrimSpace(req.IssuerName),
		Name:              strings.TrimSpace(req.Name),
		ISIN:              strings.ToUpper(strings.TrimSpace(req.ISIN)),
		CUSIP:             strings.ToUpper(strings.TrimSpace(req.CUSIP)),
		CouponRate:        req.CouponRate,
		FaceValuePerBond:  req.FaceValuePerBond,
		PurchasePrice:     resolvePrice(req.PurchasePrice, req.PurchasePricePer100, req.FaceValuePerBond),
		QuantityPurchased: req.QuantityPurchased,
		PaymentFrequency:  frequency,
		PurchaseDate:      purchaseDate,
		MaturityDate:      maturityDate,
		Currency:          normalizeCurrency(req.Currency),
		Notes:             req.Notes,
	}

	if err := validation.ValidateBond(bond); err != nil {
		return model.Bond{}, err
	}

	if err := s.bondRepo.InsertBond(ctx, &bond); err != nil {
		return model.Bond{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToCreateBond, err)
	}
	return bond, nil
}

// UpdateBond applies the non-nil fields of req to an existing bond.
//
// The merged bond is validated as a whole, so an update that moves the
// maturity date before the stored purchase date is rejected. A per-100 price
// quote is converted with the merged face value.
func (s *BondService) UpdateBond(ctx context.Context, id int64, req request.UpdateBondRequest) (model.Bond, error) {
	if err := validation.ValidateUpdateBond(req); err != nil {
		return model.Bond{}, err
	}

	bond, err := s.GetBond(ctx, id)
	if err != nil {
		return model.Bond{}, err
	}

	if req.BondType != nil {
		bond.BondType, err = model.ParseBondType(*req.BondType)
		if err != nil {
			return model.Bond{}, err
		}
	}
	if req.PaymentFrequency != nil {
		bond.PaymentFrequency, err = model.ParsePaymentFrequency(*req.PaymentFrequency)
		if err != nil {
			return model.Bond{}, err
		}
	}
	if req.PurchaseDate != nil {
		bond.PurchaseDate, err = validation.ParseDate(*req.PurchaseDate)
		if err != nil {
			return model.Bond{}, err
		}
	}
	if req.MaturityDate != nil {
		bond.MaturityDate, err = validation.ParseDate(*req.MaturityDate)
		if err != nil {
			return model.Bond{}, err
		}
	}
	if req.IssuerName != nil {
		bond.IssuerName = strings.TrimSpace(*req.IssuerName)
	}
	if req.Name != nil {
		bond.Name = strings.TrimSpace(*req.Name)
	}
	if req.ISIN != nil {
		bond.ISIN = strings.ToUpper(strings.TrimSpace(*req.ISIN))
	}
	if req.CUSIP != nil {
		bond.CUSIP = strings.ToUpper(strings.TrimSpace(*req.CUSIP))
	}
	if req.CouponRate != nil {
		bond.CouponRate = *req.CouponRate
	}
	if req.FaceValuePerBond != nil {
		bond.FaceValuePerBond = *req.FaceValuePerBond
	}
	if req.QuantityPurchased != nil {
		bond.QuantityPurchased = *req.QuantityPurchased
	}
	if req.PurchasePrice != nil || req.PurchasePricePer100 != nil {
		bond.PurchasePrice = resolvePrice(req.PurchasePrice, req.PurchasePricePer100, bond.FaceValuePerBond)
	}
	if req.Currency != nil {
		bond.Currency = normalizeCurrency(*req.Currency)
	}
	if req.Notes != nil {
		bond.Notes = *req.Notes
	}

	if err := validation.ValidateBond(bond); err != nil {
		return model.Bond{}, err
	}

	if err := s.bondRepo.UpdateBond(ctx, bond); err != nil {
		if errors.Is(err, apperrors.ErrBondNotFound) {
			return model.Bond{}, err
		}
		return model.Bond{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToUpdateBond, err)
	}
	return bond, nil
}

// DeleteBond removes a bond by ID. IDs must be positive.
func (s *BondService) DeleteBond(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", apperrors.ErrInvalidBondID, id)
	}
	if err := s.bondRepo.DeleteBond(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrBondNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToDeleteBond, err)
	}
	return nil
}

// resolvePrice returns the absolute price paid per bond. A per-100 quote is
// scaled by the face value; an absolute price wins when both are set.
func resolvePrice(price, per100 *float64, faceValue float64) float64 {
	switch {
	case price != nil:
		return *price
	case per100 != nil:
		return *per100 * faceValue / 100
	default:
		return 0
	}
}

func normalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return model.DefaultCurrency
	}
	return currency
}
