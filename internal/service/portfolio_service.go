package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// PortfolioService builds the portfolio overview: holding totals, weighted
// yields and the upcoming interest, all computed from one bond snapshot.
type PortfolioService struct {
	bondService *BondService
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(bondService *BondService) *PortfolioService {
	return &PortfolioService{
		bondService: bondService,
	}
}

// Overview summarises the portfolio as of the given date.
//
// Totals cover every bond on record, matured or not, so the numbers match the
// bond list. Monetary values are rounded to two decimals; yields are not.
// NextPayment is nil when no bond has a coupon left.
func (s *PortfolioService) Overview(ctx context.Context, asOf time.Time) (model.PortfolioOverview, error) {
	bonds, err := s.bondService.GetBonds(ctx)
	if err != nil {
		return model.PortfolioOverview{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetOverview, err)
	}

	asOf = calc.Date(asOf)
	overview := model.PortfolioOverview{
		AsOf:      asOf.Format(calc.DateLayout),
		BondCount: len(bonds),
		Yields:    calc.AllYields(bonds, asOf),
	}

	var faceValue, investment, income float64
	for _, b := range bonds {
		faceValue += calc.TotalFaceValue(b)
		investment += calc.TotalInvestment(b)
		income += calc.AnnualCouponIncome(b)
	}
	overview.TotalFaceValue = round(faceValue)
	overview.TotalInvestment = round(investment)
	overview.AnnualCouponIncome = round(income)

	schedule := calc.PortfolioSchedule(bonds, asOf)
	if len(schedule) > 0 {
		next := schedule[0]
		overview.NextPayment = &next
	}
	overview.RemainingInterestTotal = calc.TotalAmount(schedule)

	return overview, nil
}
