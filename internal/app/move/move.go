// Package move implements the board's status transition use case: a
// drag-and-drop style move of a task into any of the four columns.
package move

import (
	"context"
	"fmt"

	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage"
)

// ServiceConfig is the configuration for the move service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Move"})
	return nil
}

// Service moves tasks between board columns. Transitions form a free graph
// over the four statuses, completed tasks can be dragged back.
//
// The service holds no board state: on failure the caller reverts any
// optimistic placement it made, the service only guarantees the failure is
// reported explicitly. Overlapping moves for the same task are not
// serialized, the last response wins.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new move service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the move request parameters.
type Request struct {
	TaskID       string
	Target       model.TaskStatus
	ActingUserID string
}

// Result is the reconciliation signal for a successful move.
type Result struct {
	TaskID string
	Status model.TaskStatus
}

// Run moves a task to the target column.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	// Fail fast before touching the repository: a move needs a resolved
	// acting user.
	if req.ActingUserID == "" {
		return nil, fmt.Errorf("an acting user is required to move a task: %w", model.ErrNotAuthenticated)
	}

	if req.TaskID == "" {
		return nil, fmt.Errorf("task id is required: %w", model.ErrNotValid)
	}
	if _, err := model.ParseTaskStatus(string(req.Target)); err != nil {
		return nil, fmt.Errorf("invalid target status: %w", err)
	}

	err := s.repo.UpdateTaskStatus(ctx, req.TaskID, req.Target, req.ActingUserID)
	if err != nil {
		return nil, fmt.Errorf("could not update task status: %w", err)
	}

	s.logger.Infof("Moved task %s to %s", req.TaskID, req.Target)

	return &Result{TaskID: req.TaskID, Status: req.Target}, nil
}
