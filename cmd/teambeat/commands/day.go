package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/teambeat/teambeat/internal/app/dayview"
	"github.com/teambeat/teambeat/internal/printer"
	"github.com/teambeat/teambeat/internal/storage/sqlite"
)

type DayCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	date       string
	assignedTo string
	format     string
}

// NewDayCommand returns the day command.
func NewDayCommand(rootCmd *RootCommand, app *kingpin.Application) *DayCommand {
	c := &DayCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("day", "Show the calendar day view with positioned blocks.")
	c.Cmd.Flag("date", "Day to show (YYYY-MM-DD), defaults to today.").StringVar(&c.date)
	c.Cmd.Flag("assignee", "Filter by assignee.").StringVar(&c.assignedTo)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c DayCommand) Name() string { return c.Cmd.FullCommand() }

func (c DayCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	date, err := parseDateFlag(c.date)
	if err != nil {
		return err
	}

	boardCfg, err := c.rootCmd.BoardConfig(ctx)
	if err != nil {
		return err
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create day view service.
	svc, err := dayview.NewService(dayview.ServiceConfig{
		Repository: repo,
		Config:     boardCfg,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Build the schedule.
	schedule, err := svc.Run(ctx, dayview.Request{
		Date:       date,
		AssignedTo: c.assignedTo,
	})
	if err != nil {
		return fmt.Errorf("could not build day schedule: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintDaySchedule(*schedule); err != nil {
		return fmt.Errorf("could not print schedule: %w", err)
	}

	return nil
}

// parseDateFlag parses a YYYY-MM-DD flag value, defaulting to today (UTC).
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}

	return date, nil
}
