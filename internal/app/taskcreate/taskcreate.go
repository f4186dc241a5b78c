package taskcreate

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage"
)

// ServiceConfig is the configuration for the task create service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
	Now        func() time.Time
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TaskCreate"})
	return nil
}

// Service creates board tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
	now    func() time.Time
}

// NewService creates a new task create service.
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

// Request represents the task creation parameters.
type Request struct {
	Title      string
	StartDate  time.Time
	DueDate    time.Time
	AssignedTo string
	CreatedBy  string
}

// Run creates a new task in the to-do column. Inverted intervals are rejected
// here at the write boundary; the temporal engine still tolerates
// pre-existing bad rows by producing no segments for them.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	now := s.now()

	task := model.Task{
		ID:         ulid.Make().String(),
		Title:      req.Title,
		Status:     model.TaskStatusToDo,
		StartDate:  req.StartDate,
		DueDate:    req.DueDate,
		AssignedTo: req.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
		UpdatedBy:  req.CreatedBy,
	}

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("could not save task: %w", err)
	}

	s.logger.Infof("Created task: %s (%s)", task.Title, task.ID)

	return &task, nil
}
