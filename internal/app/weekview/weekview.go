// Package weekview assembles the calendar week view: the business-window
// segments of every day of a Monday-based week.
package weekview

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teambeat/teambeat/internal/log"
	"github.com/teambeat/teambeat/internal/model"
	"github.com/teambeat/teambeat/internal/storage"
	"github.com/teambeat/teambeat/internal/temporal"
)

// ServiceConfig is the configuration for the week view service.
type ServiceConfig struct {
	Repository storage.Repository
	Window     model.BusinessWindow
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("invalid business window: %w", err)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.WeekView"})
	return nil
}

// Service builds week schedules.
type Service struct {
	repo   storage.Repository
	window model.BusinessWindow
	logger log.Logger
}

// NewService creates a new week view service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		window: cfg.Window,
		logger: cfg.Logger,
	}, nil
}

// Request represents the week view request parameters.
type Request struct {
	// Date is any day inside the wanted week.
	Date time.Time
	// AssignedTo is an optional filter to only show tasks of one assignee.
	AssignedTo string
}

// Run builds the Monday to Sunday schedule of the week containing the
// requested date. The week grid renders segment durations directly, so days
// carry raw segments ordered by start time rather than packed blocks.
func (s *Service) Run(ctx context.Context, req Request) (*model.WeekSchedule, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", model.ErrNotValid)
	}

	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	var segments []model.Segment
	for _, t := range tasks {
		if req.AssignedTo != "" && t.AssignedTo != req.AssignedTo {
			continue
		}
		segments = append(segments, temporal.SegmentTask(t, s.window)...)
	}

	monday := mondayOf(req.Date)
	days := make([]model.DaySegments, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		daySegments := temporal.SegmentsOnDay(segments, day)
		sort.SliceStable(daySegments, func(a, b int) bool {
			return daySegments[a].Start.Before(daySegments[b].Start)
		})
		days = append(days, model.DaySegments{Date: day, Segments: daySegments})
	}

	s.logger.Debugf("Built week schedule starting %s", monday.Format("2006-01-02"))

	return &model.WeekSchedule{Monday: monday, Days: days}, nil
}

// mondayOf returns the midnight of the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday is 0.
	return day.AddDate(0, 0, -offset)
}
