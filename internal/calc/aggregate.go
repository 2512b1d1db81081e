package calc

import (
	"sort"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// PortfolioSchedule concatenates the future payments of every bond and sorts
// them by payment date. Payments on the same date keep the order of bonds.
func PortfolioSchedule(bonds []model.Bond, asOf time.Time) []model.InterestPayment {
	payments := []model.InterestPayment{}
	for _, b := range bonds {
		payments = append(payments, FuturePayments(b, asOf)...)
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaymentDate.Before(payments[j].PaymentDate)
	})
	return payments
}

// MonthlySummary sums payment amounts per calendar month.
func MonthlySummary(payments []model.InterestPayment) map[model.YearMonth]float64 {
	sums := make(map[model.YearMonth]float64)
	for _, p := range payments {
		key := model.YearMonth{Year: p.PaymentDate.Year(), Month: p.PaymentDate.Month()}
		sums[key] += p.Amount
	}
	for k, v := range sums {
		sums[k] = RoundAmount(v)
	}
	return sums
}

// YearlySummary sums payment amounts per calendar year.
func YearlySummary(payments []model.InterestPayment) map[int]float64 {
	sums := make(map[int]float64)
	for _, p := range payments {
		sums[p.PaymentDate.Year()] += p.Amount
	}
	for k, v := range sums {
		sums[k] = RoundAmount(v)
	}
	return sums
}

// PaymentsByDate groups payments by their date, keyed as YYYY-MM-DD.
func PaymentsByDate(payments []model.InterestPayment) map[string][]model.InterestPayment {
	grouped := make(map[string][]model.InterestPayment)
	for _, p := range payments {
		key := p.PaymentDate.Format(DateLayout)
		grouped[key] = append(grouped[key], p)
	}
	return grouped
}

// PaymentsBetween returns the payments dated within [from, to], both inclusive.
func PaymentsBetween(payments []model.InterestPayment, from, to time.Time) []model.InterestPayment {
	from, to = Date(from), Date(to)
	window := []model.InterestPayment{}
	for _, p := range payments {
		if p.PaymentDate.Before(from) || p.PaymentDate.After(to) {
			continue
		}
		window = append(window, p)
	}
	return window
}

// SortedMonthly flattens a monthly summary into rows ordered by year and month.
func SortedMonthly(sums map[model.YearMonth]float64) []model.MonthlyInterest {
	keys := make([]model.YearMonth, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	rows := make([]model.MonthlyInterest, len(keys))
	for i, k := range keys {
		rows[i] = model.MonthlyInterest{Year: k.Year, Month: int(k.Month), Amount: sums[k]}
	}
	return rows
}

// SortedYearly flattens a yearly summary into rows ordered by year.
func SortedYearly(sums map[int]float64) []model.YearlyInterest {
	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]model.YearlyInterest, len(years))
	for i, y := range years {
		rows[i] = model.YearlyInterest{Year: y, Amount: sums[y]}
	}
	return rows
}

// Calendar turns payments into per-day entries ordered by date.
func Calendar(payments []model.InterestPayment) []model.CalendarDay {
	grouped := PaymentsByDate(payments)
	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]model.CalendarDay, len(dates))
	for i, d := range dates {
		var total float64
		for _, p := range grouped[d] {
			total += p.Amount
		}
		days[i] = model.CalendarDay{Date: d, Total: RoundAmount(total), Payments: grouped[d]}
	}
	return days
}

// TotalAmount sums the amounts of payments, rounded to two decimals.
func TotalAmount(payments []model.InterestPayment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return RoundAmount(total)
}
