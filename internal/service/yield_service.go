package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// YieldService computes portfolio and per-bond yields. Yields are fractions
// (0.05 is 5%) and are not rounded.
type YieldService struct {
	bondService *BondService
}

// NewYieldService creates a new YieldService.
func NewYieldService(bondService *BondService) *YieldService {
	return &YieldService{
		bondService: bondService,
	}
}

// Average returns the portfolio-weighted average of one yield type.
// An empty portfolio averages to 0.
func (s *YieldService) Average(ctx context.Context, yieldType model.YieldType, asOf time.Time) (float64, error) {
	bonds, err := s.bondService.GetBonds(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetYields, err)
	}
	return calc.WeightedAverage(bonds, yieldType, asOf), nil
}

// Averages returns the portfolio-weighted average of every yield type.
func (s *YieldService) Averages(ctx context.Context, asOf time.Time) (map[model.YieldType]float64, error) {
	bonds, err := s.bondService.GetBonds(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetYields, err)
	}
	return calc.AllYields(bonds, asOf), nil
}

// BondYields returns the yield metrics of a single bond.
func (s *YieldService) BondYields(ctx context.Context, id int64, asOf time.Time) (model.BondYields, error) {
	bond, err := s.bondService.GetBond(ctx, id)
	if err != nil {
		return model.BondYields{}, err
	}
	return calc.BondYields(bond, asOf), nil
}
