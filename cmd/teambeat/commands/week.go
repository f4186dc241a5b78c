package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/teambeat/teambeat/internal/app/weekview"
	"github.com/teambeat/teambeat/internal/printer"
	"github.com/teambeat/teambeat/internal/storage/sqlite"
)

type WeekCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	date       string
	assignedTo string
	format     string
}

// NewWeekCommand returns the week command.
func NewWeekCommand(rootCmd *RootCommand, app *kingpin.Application) *WeekCommand {
	c := &WeekCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("week", "Show the calendar week view.")
	c.Cmd.Flag("date", "Any day of the wanted week (YYYY-MM-DD), defaults to today.").StringVar(&c.date)
	c.Cmd.Flag("assignee", "Filter by assignee.").StringVar(&c.assignedTo)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c WeekCommand) Name() string { return c.Cmd.FullCommand() }

func (c WeekCommand) Run(ctx context.Context) error {
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

	// Create week view service.
	svc, err := weekview.NewService(weekview.ServiceConfig{
		Repository: repo,
		Window:     boardCfg.Window,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Build the schedule.
	schedule, err := svc.Run(ctx, weekview.Request{
		Date:       date,
		AssignedTo: c.assignedTo,
	})
	if err != nil {
		return fmt.Errorf("could not build week schedule: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintWeekSchedule(*schedule); err != nil {
		return fmt.Errorf("could not print schedule: %w", err)
	}

	return nil
}
