package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	storageio "github.com/teambeat/teambeat/internal/storage/io"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	DBPath     string
	ConfigPath string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultDBPath := filepath.Join(homedir.HomeDir(), ".teambeat", "teambeat.db")
	app.Flag("db-path", "Path to the SQLite database file.").Envar("TEAMBEAT_DB_PATH").Default(defaultDBPath).StringVar(&c.DBPath)
	app.Flag("config", "Path to a board configuration YAML file (business window, layout tuning).").Envar("TEAMBEAT_CONFIG").StringVar(&c.ConfigPath)

	return c
}

// BoardConfig loads the board configuration from the configured YAML file, or
// returns the defaults when no file was given.
func (c *RootCommand) BoardConfig(ctx context.Context) (model.BoardConfig, error) {
	if c.ConfigPath == "" {
		return model.DefaultBoardConfig, nil
	}

	configPath := c.ConfigPath
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return model.BoardConfig{}, fmt.Errorf("could not resolve board config path: %w", err)
		}
		configPath = absPath
	}

	configRepo := storageio.NewBoardConfigYAMLRepository(os.DirFS("/"))
	cfg, err := configRepo.GetBoardConfig(ctx, configPath[1:])
	if err != nil {
		return model.BoardConfig{}, fmt.Errorf("could not load board config: %w", err)
	}

	return cfg, nil
}
