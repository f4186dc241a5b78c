package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/teambeat/teambeat/internal/app/boardview"
	"github.com/teambeat/teambeat/internal/printer"
	"github.com/teambeat/teambeat/internal/storage/sqlite"
)

type BoardCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	assignedTo string
	format     string
}

// NewBoardCommand returns the board command.
func NewBoardCommand(rootCmd *RootCommand, app *kingpin.Application) *BoardCommand {
	c := &BoardCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("board", "Show the kanban board with time-pressure labels.")
	c.Cmd.Flag("assignee", "Filter by assignee.").StringVar(&c.assignedTo)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c BoardCommand) Name() string { return c.Cmd.FullCommand() }

func (c BoardCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create board view service.
	svc, err := boardview.NewService(boardview.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Build the board.
	columns, err := svc.Run(ctx, boardview.Request{
		AssignedTo: c.assignedTo,
	})
	if err != nil {
		return fmt.Errorf("could not build board: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintBoard(columns); err != nil {
		return fmt.Errorf("could not print board: %w", err)
	}

	return nil
}
