// Package reminder runs the upcoming coupon digest: on a cron schedule it
// collects the portfolio payments due within the next few days and logs them.
package reminder

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/format"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// runTimeout bounds a single digest run.
const runTimeout = time.Minute

// Report is the outcome of one digest run.
type Report struct {
	RunID    string
	From     time.Time
	To       time.Time
	Payments []model.InterestPayment
	// Totals sums the payments per currency.
	Totals map[string]float64
}

// Digest collects the payments due in a rolling window starting today.
type Digest struct {
	interestService *service.InterestService
	windowDays      int
	logger          logrus.FieldLogger
	now             func() time.Time
}

// Option configures a Digest.
type Option func(*Digest)

// WithClock replaces the clock used to pick the window start.
func WithClock(now func() time.Time) Option {
	return func(d *Digest) {
		d.now = now
	}
}

// NewDigest creates a Digest covering windowDays days from today, both ends inclusive.
func NewDigest(interestService *service.InterestService, windowDays int, logger logrus.FieldLogger, opts ...Option) *Digest {
	d := &Digest{
		interestService: interestService,
		windowDays:      windowDays,
		logger:          logger,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run builds and logs one digest.
func (d *Digest) Run(ctx context.Context) (Report, error) {
	from := calc.Date(d.now())
	to := from.AddDate(0, 0, d.windowDays)
	report := Report{
		RunID:  uuid.NewString(),
		From:   from,
		To:     to,
		Totals: make(map[string]float64),
	}

	log := d.logger.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"from":   from.Format(calc.DateLayout),
		"to":     to.Format(calc.DateLayout),
	})

	payments, err := d.interestService.PaymentsBetween(ctx, from, to)
	if err != nil {
		log.WithError(err).Error("payment digest failed")
		return report, fmt.Errorf("failed to collect upcoming payments: %w", err)
	}
	report.Payments = payments

	for _, p := range payments {
		report.Totals[p.Currency] += p.Amount
		log.WithFields(logrus.Fields{
			"bond_id": p.BondID,
			"bond":    p.BondName,
			"date":    p.PaymentDate.Format(calc.DateLayout),
			"amount":  format.Money(p.Amount, p.Currency),
		}).Info("upcoming coupon payment")
	}

	currencies := make([]string, 0, len(report.Totals))
	for c, total := range report.Totals {
		report.Totals[c] = calc.RoundAmount(total)
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	totals := make([]string, len(currencies))
	for i, c := range currencies {
		totals[i] = format.Money(report.Totals[c], c)
	}
	log.WithFields(logrus.Fields{
		"payments": len(payments),
		"totals":   totals,
	}).Info("payment digest complete")

	return report, nil
}

// Scheduler runs a Digest on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
}

// Start schedules digest according to spec, a standard five-field cron
// expression such as "0 8 * * *", and starts the scheduler goroutine.
func Start(spec string, digest *Digest, logger logrus.FieldLogger) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		// Errors are logged by Run.
		_, _ = digest.Run(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	c.Start()
	logger.WithField("schedule", spec).Info("payment reminder scheduled")

	return &Scheduler{cron: c}, nil
}

// Stop halts the schedule and waits for a running digest to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
