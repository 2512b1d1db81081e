// Package report renders bonds, schedules and summaries as Markdown for the
// command line client. Amounts are formatted per currency; yields as percentages.
package report

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/format"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// doc accumulates a Markdown document.
type doc struct {
	b strings.Builder
}

func (d *doc) h1(text string) { fmt.Fprintf(&d.b, "# %s\n\n", text) }
func (d *doc) h2(text string) { fmt.Fprintf(&d.b, "## %s\n\n", text) }

func (d *doc) text(layout string, args ...any) {
	fmt.Fprintf(&d.b, layout, args...)
	d.b.WriteString("\n\n")
}

// table writes a pipe table. Columns listed in right are right-aligned.
func (d *doc) table(header []string, rows [][]string, right ...int) {
	aligned := make(map[int]bool, len(right))
	for _, i := range right {
		aligned[i] = true
	}

	d.b.WriteString("| " + strings.Join(header, " | ") + " |\n|")
	for i := range header {
		if aligned[i] {
			d.b.WriteString("---:|")
		} else {
			d.b.WriteString("---|")
		}
	}
	d.b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escape(c)
		}
		d.b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	d.b.WriteString("\n")
}

func (d *doc) String() string { return d.b.String() }

// escape keeps user text from breaking a table row.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

func date(p model.InterestPayment) string {
	return p.PaymentDate.Format(calc.DateLayout)
}

// Bonds renders the bond list.
func Bonds(bonds []model.Bond) string {
	var d doc
	d.h1("Bonds")
	if len(bonds) == 0 {
		d.text("No bonds yet. Add one with `bondctl add`.")
		return d.String()
	}

	rows := make([][]string, len(bonds))
	for i, b := range bonds {
		rows[i] = []string{
			fmt.Sprint(b.ID),
			b.DisplayName(),
			string(b.BondType),
			format.Percent(b.CouponRate),
			string(b.PaymentFrequency),
			fmt.Sprint(b.QuantityPurchased),
			format.Money(calc.TotalFaceValue(b), b.Currency),
			b.MaturityDate.Format(calc.DateLayout),
		}
	}
	d.table([]string{"ID", "Name", "Type", "Coupon", "Frequency", "Qty", "Face value", "Maturity"}, rows, 0, 3, 5, 6)
	return d.String()
}

// Bond renders the details, yields and remaining schedule of one bond.
func Bond(b model.Bond, yields model.BondYields, payments []model.InterestPayment) string {
	var d doc
	d.h1(b.DisplayName())

	rows := [][]string{
		{"Issuer", b.IssuerName},
		{"Type", string(b.BondType)},
		{"Coupon rate", format.Percent(b.CouponRate)},
		{"Frequency", string(b.PaymentFrequency)},
		{"Face value per bond", format.Money(b.FaceValuePerBond, b.Currency)},
		{"Purchase price per bond", format.Money(b.PurchasePrice, b.Currency)},
		{"Quantity", fmt.Sprint(b.QuantityPurchased)},
		{"Purchase date", b.PurchaseDate.Format(calc.DateLayout)},
		{"Maturity date", b.MaturityDate.Format(calc.DateLayout)},
	}
	if b.ISIN != "" {
		rows = append(rows, []string{"ISIN", b.ISIN})
	}
	if b.CUSIP != "" {
		rows = append(rows, []string{"CUSIP", b.CUSIP})
	}
	if b.Notes != "" {
		rows = append(rows, []string{"Notes", b.Notes})
	}
	d.table([]string{"Field", "Value"}, rows)

	d.h2("Yields")
	d.table([]string{"Metric", "Value"}, [][]string{
		{"Coupon rate", format.Percent(yields.CouponRate)},
		{"Current yield", format.Percent(yields.CurrentYield)},
		{"Yield to maturity", format.Percent(yields.YieldToMaturity)},
		{"Years to maturity", fmt.Sprintf("%.2f", yields.YearsToMaturity)},
	}, 1)

	d.h2("Remaining payments")
	if len(payments) == 0 {
		d.text("No coupon payments remaining.")
		return d.String()
	}
	d.table([]string{"Date", "Amount"}, paymentRows(payments, false), 1)
	return d.String()
}

// Schedule renders the portfolio payment schedule.
func Schedule(payments []model.InterestPayment) string {
	var d doc
	d.h1("Interest schedule")
	if len(payments) == 0 {
		d.text("No upcoming payments.")
		return d.String()
	}
	d.table([]string{"Date", "Bond", "Amount"}, paymentRows(payments, true), 2)
	return d.String()
}

func paymentRows(payments []model.InterestPayment, withBond bool) [][]string {
	rows := make([][]string, len(payments))
	for i, p := range payments {
		if withBond {
			rows[i] = []string{date(p), p.BondName, format.Money(p.Amount, p.Currency)}
		} else {
			rows[i] = []string{date(p), format.Money(p.Amount, p.Currency)}
		}
	}
	return rows
}

// Monthly renders interest per calendar month.
// Sums mix currencies, so amounts are shown as plain numbers.
func Monthly(rows []model.MonthlyInterest) string {
	var d doc
	d.h1("Interest by month")
	if len(rows) == 0 {
		d.text("No upcoming payments.")
		return d.String()
	}
	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{fmt.Sprintf("%04d-%02d", r.Year, r.Month), fmt.Sprintf("%.2f", r.Amount)}
	}
	d.table([]string{"Month", "Amount"}, table, 1)
	return d.String()
}

// Yearly renders interest per calendar year.
func Yearly(rows []model.YearlyInterest) string {
	var d doc
	d.h1("Interest by year")
	if len(rows) == 0 {
		d.text("No upcoming payments.")
		return d.String()
	}
	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{fmt.Sprint(r.Year), fmt.Sprintf("%.2f", r.Amount)}
	}
	d.table([]string{"Year", "Amount"}, table, 1)
	return d.String()
}

// Yields renders the portfolio-weighted yields.
func Yields(yields map[model.YieldType]float64) string {
	var d doc
	d.h1("Portfolio yields")
	d.table([]string{"Metric", "Weighted average"}, yieldRows(yields), 1)
	return d.String()
}

func yieldRows(yields map[model.YieldType]float64) [][]string {
	rows := make([][]string, len(model.YieldTypes))
	for i, t := range model.YieldTypes {
		rows[i] = []string{yieldLabel(t), format.Percent(yields[t])}
	}
	return rows
}

func yieldLabel(t model.YieldType) string {
	switch t {
	case model.YieldCouponRate:
		return "Coupon rate"
	case model.YieldCurrentYield:
		return "Current yield"
	case model.YieldYieldToMaturity:
		return "Yield to maturity"
	default:
		return string(t)
	}
}

// Overview renders the portfolio overview. currency labels the totals; the
// portfolio is assumed to be held in one currency.
func Overview(o model.PortfolioOverview, currency string) string {
	var d doc
	d.h1("Portfolio overview")
	d.text("As of %s, %d bonds.", o.AsOf, o.BondCount)

	d.table([]string{"Total", "Amount"}, [][]string{
		{"Face value", format.Money(o.TotalFaceValue, currency)},
		{"Invested", format.Money(o.TotalInvestment, currency)},
		{"Annual coupon income", format.Money(o.AnnualCouponIncome, currency)},
		{"Remaining interest", format.Money(o.RemainingInterestTotal, currency)},
	}, 1)

	d.h2("Yields")
	d.table([]string{"Metric", "Weighted average"}, yieldRows(o.Yields), 1)

	d.h2("Next payment")
	if o.NextPayment == nil {
		d.text("No upcoming payments.")
	} else {
		p := o.NextPayment
		d.text("**%s** pays %s on %s.", escape(p.BondName), format.Money(p.Amount, p.Currency), date(*p))
	}
	return d.String()
}
