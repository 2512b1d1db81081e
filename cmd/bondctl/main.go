// Command bondctl manages the bond portfolio from the terminal: it adds and
// removes bonds and prints schedules, interest summaries and yields.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

// commands lists every bondctl subcommand in help order.
var commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&showCmd{},
	&deleteCmd{},
	newReportCmd("schedule", "print every upcoming coupon payment", renderSchedule),
	newReportCmd("monthly", "print upcoming interest per month", renderMonthly),
	newReportCmd("yearly", "print upcoming interest per year", renderYearly),
	newReportCmd("yields", "print the portfolio-weighted yields", renderYields),
	newReportCmd("overview", "print the portfolio overview", renderOverview),
	&keygenCmd{},
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.StringVar(&globals.dbPath, "db", "", "SQLite database path (defaults to DB_PATH)")
	flag.BoolVar(&globals.raw, "raw", false, "print plain markdown instead of rendering it")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
