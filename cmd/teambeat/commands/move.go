package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/teambeat/teambeat/internal/app/move"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/printer"
	"github.com/teambeat/teambeat/internal/storage/sqlite"
)

type MoveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID string
	target string
	user   string
}

// NewMoveCommand returns the move command.
func NewMoveCommand(rootCmd *RootCommand, app *kingpin.Application) *MoveCommand {
	c := &MoveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("move", "Move a task to another board column.")
	c.Cmd.Arg("task-id", "Task ID.").Required().StringVar(&c.taskID)
	c.Cmd.Arg("status", "Target column (to_do, work_in_progress, under_review, completed).").Required().StringVar(&c.target)
	c.Cmd.Flag("user", "Acting user ID.").Envar("TEAMBEAT_USER").StringVar(&c.user)

	return c
}

func (c MoveCommand) Name() string { return c.Cmd.FullCommand() }

func (c MoveCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create move service.
	svc, err := move.NewService(move.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute the move. Failures surface as an explicit message so the user
	// knows the card stays where it was.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	result, err := svc.Run(ctx, move.Request{
		TaskID:       c.taskID,
		Target:       model.TaskStatus(c.target),
		ActingUserID: c.user,
	})
	if err != nil {
		_ = p.PrintMessage(fmt.Sprintf("Move failed, task %s keeps its column", c.taskID))
		return fmt.Errorf("could not move task: %w", err)
	}

	if err := p.PrintMessage(fmt.Sprintf("Moved task %s to %s", result.TaskID, printer.StatusTitle(result.Status))); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
