package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/teambeat/teambeat/internal/app/taskcreate"
	"github.com/teambeat/teambeat/internal/printer"
	"github.com/teambeat/teambeat/internal/storage/sqlite"
)

type TaskCreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	title      string
	start      string
	due        string
	assignedTo string
	user       string
}

// NewTaskCreateCommand returns the task create command.
func NewTaskCreateCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *TaskCreateCommand {
	c := &TaskCreateCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("create", "Create a new task in the to-do column.")
	c.Cmd.Arg("title", "Task title.").Required().StringVar(&c.title)
	c.Cmd.Flag("start", "Start instant (RFC3339, e.g. 2026-03-02T09:00:00Z).").Required().StringVar(&c.start)
	c.Cmd.Flag("due", "Due instant (RFC3339).").Required().StringVar(&c.due)
	c.Cmd.Flag("assignee", "Assignee user ID.").StringVar(&c.assignedTo)
	c.Cmd.Flag("user", "Acting user ID.").Envar("TEAMBEAT_USER").StringVar(&c.user)

	return c
}

func (c TaskCreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskCreateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	start, err := time.Parse(time.RFC3339, c.start)
	if err != nil {
		return fmt.Errorf("invalid start instant %q: %w", c.start, err)
	}
	due, err := time.Parse(time.RFC3339, c.due)
	if err != nil {
		return fmt.Errorf("invalid due instant %q: %w", c.due, err)
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create task create service.
	svc, err := taskcreate.NewService(taskcreate.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute creation.
	task, err := svc.Run(ctx, taskcreate.Request{
		Title:      c.title,
		StartDate:  start,
		DueDate:    due,
		AssignedTo: c.assignedTo,
		CreatedBy:  c.user,
	})
	if err != nil {
		return fmt.Errorf("could not create task: %w", err)
	}

	// Print success message.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Created task: %s (%s)", task.Title, task.ID)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
