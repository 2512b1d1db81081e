package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/config"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/database"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/repository"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/validation"
)

// globals holds the top-level flags shared by every command.
var globals struct {
	dbPath string
	raw    bool
}

// app is the service graph a command works with.
type app struct {
	db        *sql.DB
	bonds     *service.BondService
	interest  *service.InterestService
	yields    *service.YieldService
	portfolio *service.PortfolioService
}

// openApp loads the configuration, opens and migrates the database and wires
// the services. Call Close when done.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dbPath := cfg.Database.Path
	if globals.dbPath != "" {
		dbPath = globals.dbPath
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	cipher, err := repository.NewNotesCipher(cfg.Database.NotesKey)
	if err != nil {
		db.Close()
		return nil, err
	}

	bonds := service.NewBondService(repository.NewBondRepository(db, cipher))
	return &app{
		db:        db,
		bonds:     bonds,
		interest:  service.NewInterestService(bonds),
		yields:    service.NewYieldService(bonds),
		portfolio: service.NewPortfolioService(bonds),
	}, nil
}

// Close releases the database.
func (a *app) Close() {
	a.db.Close()
}

// withApp opens the app, runs fn and maps its error to an exit status.
func withApp(fn func(a *app) error) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := fn(a); err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printError prints validation failures one field per line.
func printError(err error) {
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fields := make([]string, 0, len(vErr.Fields))
	for f := range vErr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	fmt.Fprintln(os.Stderr, "Error: invalid bond")
	for _, f := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", f, vErr.Fields[f])
	}
}

// asOfFlag is embedded by commands that compute against a reference date.
type asOfFlag struct {
	asOf string
}

func (a *asOfFlag) register(f *flag.FlagSet) {
	f.StringVar(&a.asOf, "as-of", "", "reference date YYYY-MM-DD (defaults to today)")
}

// date returns the parsed -as-of value, today when empty.
func (a *asOfFlag) date() (time.Time, error) {
	if a.asOf == "" {
		return calc.Today(), nil
	}
	return validation.ParseDate(a.asOf)
}

// parseIDArg reads the single bond ID argument.
func parseIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one bond ID, got %d arguments", len(args))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bond ID must be a number: %q", args[0])
	}
	return id, nil
}

// printMarkdown renders md for the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if globals.raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
