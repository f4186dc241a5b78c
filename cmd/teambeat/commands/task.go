package commands

import (
	"github.com/alecthomas/kingpin/v2"
)

// NewTaskCommand returns the task parent command, its subcommands hang from it.
func NewTaskCommand(app *kingpin.Application) *kingpin.CmdClause {
	return app.Command("task", "Manage board tasks.")
}
