package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/report"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/repository"
)

// renderFunc builds the Markdown of one report.
type renderFunc func(ctx context.Context, a *app, c *reportCmd) (string, error)

// reportCmd is a subcommand that renders one report as of a date.
type reportCmd struct {
	asOfFlag
	name     string
	synopsis string
	render   renderFunc
}

func newReportCmd(name, synopsis string, render renderFunc) *reportCmd {
	return &reportCmd{name: name, synopsis: synopsis, render: render}
}

func (c *reportCmd) Name() string     { return c.name }
func (c *reportCmd) Synopsis() string { return c.synopsis }
func (c *reportCmd) Usage() string {
	return fmt.Sprintf("bondctl %s [-as-of <date>]\n\n  %s.\n", c.name, c.synopsis)
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := c.date(); err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}
	return withApp(func(a *app) error {
		md, err := c.render(ctx, a, c)
		if err != nil {
			return err
		}
		printMarkdown(md)
		return nil
	})
}

func renderSchedule(ctx context.Context, a *app, c *reportCmd) (string, error) {
	asOf, _ := c.date()
	payments, err := a.interest.Schedule(ctx, asOf)
	if err != nil {
		return "", err
	}
	return report.Schedule(payments), nil
}

func renderMonthly(ctx context.Context, a *app, c *reportCmd) (string, error) {
	asOf, _ := c.date()
	rows, err := a.interest.Monthly(ctx, asOf)
	if err != nil {
		return "", err
	}
	return report.Monthly(rows), nil
}

func renderYearly(ctx context.Context, a *app, c *reportCmd) (string, error) {
	asOf, _ := c.date()
	rows, err := a.interest.Yearly(ctx, asOf)
	if err != nil {
		return "", err
	}
	return report.Yearly(rows), nil
}

func renderYields(ctx context.Context, a *app, c *reportCmd) (string, error) {
	asOf, _ := c.date()
	yields, err := a.yields.Averages(ctx, asOf)
	if err != nil {
		return "", err
	}
	return report.Yields(yields), nil
}

func renderOverview(ctx context.Context, a *app, c *reportCmd) (string, error) {
	asOf, _ := c.date()
	overview, err := a.portfolio.Overview(ctx, asOf)
	if err != nil {
		return "", err
	}
	currency := model.DefaultCurrency
	if overview.NextPayment != nil {
		currency = overview.NextPayment.Currency
	}
	return report.Overview(overview, currency), nil
}

type keygenCmd struct{}

func (*keygenCmd) Name() string     { return "keygen" }
func (*keygenCmd) Synopsis() string { return "generate a key for NOTES_ENCRYPTION_KEY" }
func (*keygenCmd) Usage() string {
	return `bondctl keygen

  Prints a new random key. Set it as NOTES_ENCRYPTION_KEY to encrypt bond notes at rest.
`
}

func (*keygenCmd) SetFlags(*flag.FlagSet) {}

func (*keygenCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	key, err := repository.GenerateNotesKey()
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Println(key)
	return subcommands.ExitSuccess
}
