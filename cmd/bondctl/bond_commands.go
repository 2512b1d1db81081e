package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/request"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/format"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/report"
)

type addCmd struct {
	req      request.CreateBondRequest
	price    float64
	price100 float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a bond to the portfolio" }
func (*addCmd) Usage() string {
	return `bondctl add -issuer <name> -coupon <rate> -face <value> (-price <amount> | -price100 <quote>)
            -qty <n> -freq <frequency> -purchase <date> -maturity <date> [options]

  Adds a bond. The coupon rate is a fraction: 5% is 0.05.
  -price is the amount paid per bond, -price100 a quote per 100 of face value.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.req.BondType, "type", string(model.BondTypeCorporate), "TREASURY, CORPORATE, MUNICIPAL or AGENCY")
	f.StringVar(&c.req.IssuerName, "issuer", "", "issuer name")
	f.StringVar(&c.req.Name, "name", "", "display name")
	f.StringVar(&c.req.ISIN, "isin", "", "ISIN")
	f.StringVar(&c.req.CUSIP, "cusip", "", "CUSIP")
	f.Float64Var(&c.req.CouponRate, "coupon", 0, "annual coupon rate as a fraction")
	f.Float64Var(&c.req.FaceValuePerBond, "face", 1000, "face value per bond")
	f.Float64Var(&c.price, "price", 0, "purchase price per bond")
	f.Float64Var(&c.price100, "price100", 0, "purchase price per 100 face value")
	f.IntVar(&c.req.QuantityPurchased, "qty", 1, "number of bonds")
	f.StringVar(&c.req.PaymentFrequency, "freq", string(model.FrequencySemiAnnual), "ANNUAL, SEMI_ANNUAL, QUARTERLY, MONTHLY or ZERO_COUPON")
	f.StringVar(&c.req.PurchaseDate, "purchase", "", "purchase date YYYY-MM-DD (defaults to today)")
	f.StringVar(&c.req.MaturityDate, "maturity", "", "maturity date YYYY-MM-DD")
	f.StringVar(&c.req.Currency, "currency", model.DefaultCurrency, "ISO currency code")
	f.StringVar(&c.req.Notes, "notes", "", "free-text notes")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.req.PurchaseDate == "" {
		c.req.PurchaseDate = calc.Today().Format(calc.DateLayout)
	}
	// Only pass the price flags that were set, so validation can insist on one.
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "price":
			c.req.PurchasePrice = &c.price
		case "price100":
			c.req.PurchasePricePer100 = &c.price100
		}
	})

	return withApp(func(a *app) error {
		bond, err := a.bonds.CreateBond(ctx, c.req)
		if err != nil {
			return err
		}
		fmt.Printf("Added bond %d: %s, %s per bond\n", bond.ID, bond.DisplayName(), format.Money(bond.PurchasePrice, bond.Currency))
		return nil
	})
}

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list every bond" }
func (*listCmd) Usage() string {
	return `bondctl list

  Lists the bonds in the portfolio ordered by maturity.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(func(a *app) error {
		bonds, err := a.bonds.GetBonds(ctx)
		if err != nil {
			return err
		}
		printMarkdown(report.Bonds(bonds))
		return nil
	})
}

type showCmd struct {
	asOfFlag
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one bond with its yields and remaining payments" }
func (*showCmd) Usage() string {
	return `bondctl show [-as-of <date>] <id>
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseIDArg(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	asOf, err := c.date()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app) error {
		bond, err := a.bonds.GetBond(ctx, id)
		if err != nil {
			return err
		}
		payments := calc.FuturePayments(bond, asOf)
		printMarkdown(report.Bond(bond, calc.BondYields(bond, asOf), payments))
		return nil
	})
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a bond" }
func (*deleteCmd) Usage() string {
	return `bondctl delete <id>
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseIDArg(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withApp(func(a *app) error {
		if err := a.bonds.DeleteBond(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted bond %d\n", id)
		return nil
	})
}
