// Package dayview assembles the calendar day view: per business-window hour,
// the positioned blocks of the segments starting in that hour.
package dayview

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

// ServiceConfig is the configuration for the day view service.
type ServiceConfig struct {
	Repository storage.Repository
	Config     model.BoardConfig
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if err := c.Config.Window.Validate(); err != nil {
		return fmt.Errorf("invalid business window: %w", err)
	}
	c.Config.Layout = c.Config.Layout.WithDefaults()
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.DayView"})
	return nil
}

// Service builds day schedules.
type Service struct {
	repo   storage.Repository
	config model.BoardConfig
	logger log.Logger
}

// NewService creates a new day view service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		config: cfg.Config,
		logger: cfg.Logger,
	}, nil
}

// Request represents the day view request parameters.
type Request struct {
	// Date selects the calendar day (only year, month and day are used).
	Date time.Time
	// AssignedTo is an optional filter to only show tasks of one assignee.
	AssignedTo string
}

// Run builds the schedule for one day: every task is segmented against the
// business window, the day's segments are bucketed by start hour, sorted
// start ascending (the layout engine preserves our order) and laid out per
// hour row. Malformed tasks simply contribute no segments.
func (s *Service) Run(ctx context.Context, req Request) (*model.DaySchedule, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", model.ErrNotValid)
	}

	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	var daySegments []model.Segment
	for _, t := range tasks {
		if req.AssignedTo != "" && t.AssignedTo != req.AssignedTo {
			continue
		}
		segments := temporal.SegmentTask(t, s.config.Window)
		daySegments = append(daySegments, temporal.SegmentsOnDay(segments, req.Date)...)
	}

	sort.SliceStable(daySegments, func(i, j int) bool {
		return daySegments[i].Start.Before(daySegments[j].Start)
	})

	byHour := map[int][]model.Segment{}
	for _, seg := range daySegments {
		byHour[seg.Start.Hour()] = append(byHour[seg.Start.Hour()], seg)
	}

	rows := make([]model.HourRow, 0, s.config.Window.EndHour-s.config.Window.StartHour)
	for hour := s.config.Window.StartHour; hour < s.config.Window.EndHour; hour++ {
		rows = append(rows, model.HourRow{
			Hour:   hour,
			Blocks: temporal.LayoutSlot(byHour[hour], s.config.Layout),
		})
	}

	s.logger.Debugf("Built day schedule for %s with %d segments", req.Date.Format("2006-01-02"), len(daySegments))

	return &model.DaySchedule{
		Date:   req.Date,
		Window: s.config.Window,
		Rows:   rows,
	}, nil
}
