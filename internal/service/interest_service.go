package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/validation"
)

// InterestService computes coupon schedules and interest summaries for the
// bonds held in the portfolio. Every method takes the reference date asOf;
// only payments strictly after asOf are part of the schedule.
type InterestService struct {
	bondService *BondService
}

// NewInterestService creates a new InterestService.
func NewInterestService(bondService *BondService) *InterestService {
	return &InterestService{
		bondService: bondService,
	}
}

// Schedule returns every future payment of the portfolio in date order.
func (s *InterestService) Schedule(ctx context.Context, asOf time.Time) ([]model.InterestPayment, error) {
	bonds, err := s.bondService.GetBonds(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetSchedule, err)
	}
	return calc.PortfolioSchedule(bonds, asOf), nil
}

// BondPayments returns the future payments of a single bond.
func (s *InterestService) BondPayments(ctx context.Context, id int64, asOf time.Time) ([]model.InterestPayment, error) {
	bond, err := s.bondService.GetBond(ctx, id)
	if err != nil {
		return nil, err
	}
	return calc.FuturePayments(bond, asOf), nil
}

// NextPayment returns the next coupon of a single bond.
// Returns apperrors.ErrNoUpcomingPayment for matured and zero-coupon bonds.
func (s *InterestService) NextPayment(ctx context.Context, id int64, asOf time.Time) (model.InterestPayment, error) {
	bond, err := s.bondService.GetBond(ctx, id)
	if err != nil {
		return model.InterestPayment{}, err
	}
	payment, ok := calc.NextPayment(bond, asOf)
	if !ok {
		return model.InterestPayment{}, fmt.Errorf("%w: bond %d", apperrors.ErrNoUpcomingPayment, id)
	}
	return payment, nil
}

// Monthly returns the interest due per calendar month, oldest month first.
func (s *InterestService) Monthly(ctx context.Context, asOf time.Time) ([]model.MonthlyInterest, error) {
	payments, err := s.Schedule(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetSummary, err)
	}
	return calc.SortedMonthly(calc.MonthlySummary(payments)), nil
}

// Yearly returns the interest due per calendar year, oldest year first.
func (s *InterestService) Yearly(ctx context.Context, asOf time.Time) ([]model.YearlyInterest, error) {
	payments, err := s.Schedule(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetSummary, err)
	}
	return calc.SortedYearly(calc.YearlySummary(payments)), nil
}

// PaymentsBetween returns the portfolio payments dated within [from, to].
// Payments falling on from itself are included.
func (s *InterestService) PaymentsBetween(ctx context.Context, from, to time.Time) ([]model.InterestPayment, error) {
	from, to = calc.Date(from), calc.Date(to)
	if err := validation.ValidateDateRange(from, to); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidDateRange, err)
	}

	// The schedule excludes its reference date, so start one day early.
	payments, err := s.Schedule(ctx, from.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	return calc.PaymentsBetween(payments, from, to), nil
}

// Calendar groups the payments within [from, to] by date.
func (s *InterestService) Calendar(ctx context.Context, from, to time.Time) ([]model.CalendarDay, error) {
	payments, err := s.PaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return calc.Calendar(payments), nil
}
