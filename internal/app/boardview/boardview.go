// Package boardview assembles the kanban board: the four ordered columns
// with their cards and time-pressure labels.
package boardview

import (
	"context"
	"fmt"
	"time"

	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage"
	"github.com/teambeat/teambeat/internal/temporal"
)

// ServiceConfig is the configuration for the board view service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
	// Now is the clock used for duration labels, defaults to time.Now in UTC.
	Now func() time.Time
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.BoardView"})
	return nil
}

// Service builds board snapshots.
type Service struct {
	repo   storage.Repository
	logger log.Logger
	now    func() time.Time
}

// NewService creates a new board view service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
		now:    cfg.Now,
	}, nil
}

// Request represents the board view request parameters.
type Request struct {
	// AssignedTo is an optional filter to only show tasks of one assignee.
	AssignedTo string
}

// Run returns the four board columns in display order, each card carrying its
// duration label (nil for columns that are not time-pressured).
func (s *Service) Run(ctx context.Context, req Request) ([]model.BoardColumn, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	now := s.now()

	cardsByStatus := map[model.TaskStatus][]model.TaskCard{}
	for _, t := range tasks {
		if req.AssignedTo != "" && t.AssignedTo != req.AssignedTo {
			continue
		}
		cardsByStatus[t.Status] = append(cardsByStatus[t.Status], model.TaskCard{
			Task: t,
			Due:  temporal.FormatDuration(now, t.DueDate, t.Status),
		})
	}

	columns := make([]model.BoardColumn, 0, len(model.AllTaskStatuses))
	for _, status := range model.AllTaskStatuses {
		columns = append(columns, model.BoardColumn{
			Status: status,
			Cards:  cardsByStatus[status],
		})
	}

	s.logger.Debugf("Built board with %d tasks", len(tasks))
	return columns, nil
}
