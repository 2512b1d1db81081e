package calc

import "time"

// DateLayout is the calendar date format used across the application.
const DateLayout = "2006-01-02"

// Date returns the calendar date of t as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return Date(time.Now().UTC())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths shifts t by n calendar months, keeping the day of month and
// clamping it to the last day of a shorter target month (Jan 31 + 1 month is
// Feb 28 or 29). Unlike time.AddDate it never spills into the next month.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total-floorDiv(total, 12)*12 + 1)
	if last := daysIn(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Period is a calendar distance split into whole years, whole months and
// remaining days.
type Period struct {
	Years  int
	Months int
	Days   int
}

// PeriodBetween returns the calendar period from start to end.
// Months are counted with AddMonths semantics, so the remaining days are
// always less than a month. A non-positive range returns the zero Period.
func PeriodBetween(start, end time.Time) Period {
	start, end = Date(start), Date(end)
	if !end.After(start) {
		return Period{}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if AddMonths(start, months).After(end) {
		months--
	}
	anchor := AddMonths(start, months)
	days := int(end.Sub(anchor).Hours() / 24)

	return Period{Years: months / 12, Months: months % 12, Days: days}
}

// YearsToMaturity converts the period between asOf and maturity to years as
// years + months/12 + days/365.
//
// This is an approximate day count, not actual/actual or 30/360. It is good
// enough for portfolio-level yield estimates and nothing more.
func YearsToMaturity(asOf, maturity time.Time) float64 {
	p := PeriodBetween(asOf, maturity)
	return float64(p.Years) + float64(p.Months)/12.0 + float64(p.Days)/365.0
}
