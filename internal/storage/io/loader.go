package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/teambeat/teambeat/internal/model"
)

// BoardConfigYAMLRepository loads board display configuration from YAML files.
type BoardConfigYAMLRepository struct {
	fs fs.FS
}

// NewBoardConfigYAMLRepository creates a new YAML board config repository.
func NewBoardConfigYAMLRepository(filesystem fs.FS) *BoardConfigYAMLRepository {
	return &BoardConfigYAMLRepository{fs: filesystem}
}

// GetBoardConfig loads a board configuration from a YAML file and returns a
// validated domain model. Missing sections fall back to the defaults
// (a 9 to 19 business window, 6/24 pixel indents).
func (r *BoardConfigYAMLRepository) GetBoardConfig(ctx context.Context, path string) (model.BoardConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.BoardConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.BoardConfig{}, ctx.Err()
	}

	var cfg BoardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.BoardConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return model.BoardConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// BoardConfig represents the YAML structure for board configuration.
type BoardConfig struct {
	Window *WindowConfig `yaml:"window,omitempty"`
	Layout *LayoutConfig `yaml:"layout,omitempty"`
}

// WindowConfig represents the YAML structure for the business window.
type WindowConfig struct {
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`
}

// LayoutConfig represents the YAML structure for layout tuning.
type LayoutConfig struct {
	IndentPx    int `yaml:"indent_px"`
	MaxIndentPx int `yaml:"max_indent_px"`
}

func (c *BoardConfig) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowConfig{
			StartHour: model.DefaultBoardConfig.Window.StartHour,
			EndHour:   model.DefaultBoardConfig.Window.EndHour,
		}
	}
	if c.Layout == nil {
		c.Layout = &LayoutConfig{
			IndentPx:    model.DefaultBoardConfig.Layout.IndentPx,
			MaxIndentPx: model.DefaultBoardConfig.Layout.MaxIndentPx,
		}
	}
}

func (c BoardConfig) validate() error {
	window := model.BusinessWindow{StartHour: c.Window.StartHour, EndHour: c.Window.EndHour}
	if err := window.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	if c.Layout.IndentPx < 0 {
		return fmt.Errorf("layout indent_px must not be negative, got: %d", c.Layout.IndentPx)
	}
	if c.Layout.MaxIndentPx < 0 {
		return fmt.Errorf("layout max_indent_px must not be negative, got: %d", c.Layout.MaxIndentPx)
	}
	if c.Layout.MaxIndentPx < c.Layout.IndentPx {
		return fmt.Errorf("layout max_indent_px must be at least indent_px")
	}

	return nil
}

func (c BoardConfig) toModel() model.BoardConfig {
	return model.BoardConfig{
		Window: model.BusinessWindow{
			StartHour: c.Window.StartHour,
			EndHour:   c.Window.EndHour,
		},
		Layout: model.LayoutOptions{
			IndentPx:    c.Layout.IndentPx,
			MaxIndentPx: c.Layout.MaxIndentPx,
		},
	}
}
