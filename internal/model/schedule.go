package model

import (
	"fmt"
	"time"
)

// BusinessWindow is the daily [StartHour, EndHour) range during which tasks
// are considered active for display purposes.
type BusinessWindow struct {
	StartHour int
	EndHour   int
}

// Validate validates the business window.
func (w BusinessWindow) Validate() error {
	if w.StartHour < 0 || w.StartHour > 23 {
		return fmt.Errorf("start hour must be in [0, 23]: %w", ErrNotValid)
	}
	if w.EndHour < 1 || w.EndHour > 24 {
		return fmt.Errorf("end hour must be in [1, 24]: %w", ErrNotValid)
	}
	if w.StartHour >= w.EndHour {
		return fmt.Errorf("start hour must be before end hour: %w", ErrNotValid)
	}

	return nil
}

// Segment is the portion of a task's lifespan clipped to a single calendar
// day and to the business window. Segments are derived values, recomputed on
// every query and never persisted.
type Segment struct {
	TaskID string
	Start  time.Time
	End    time.Time
}

// Minutes returns the segment length in whole minutes.
func (s Segment) Minutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// LayoutOptions tunes the horizontal indentation of nested segments. The
// indent is capped, not scaled, so deeply nested segments never end up with a
// negative effective width.
type LayoutOptions struct {
	IndentPx    int
	MaxIndentPx int
}

// DefaultLayoutOptions are the layout tuning values used when none are
// configured.
var DefaultLayoutOptions = LayoutOptions{
	IndentPx:    6,
	MaxIndentPx: 24,
}

// WithDefaults returns the options with zero values replaced by defaults.
func (o LayoutOptions) WithDefaults() LayoutOptions {
	if o.IndentPx == 0 {
		o.IndentPx = DefaultLayoutOptions.IndentPx
	}
	if o.MaxIndentPx == 0 {
		o.MaxIndentPx = DefaultLayoutOptions.MaxIndentPx
	}
	return o
}

// PositionedBlock is a segment placed inside an hour row so that all
// concurrent segments of the slot stay visible and non-overlapping.
type PositionedBlock struct {
	Segment Segment

	// Vertical placement within the owning 60 minute row, 0-100 scale.
	// Height is intentionally not clipped to 100, a block may overflow into
	// the next rows to imply continuation.
	TopPercent    float64
	HeightPercent float64

	// NestingLevel is the number of other segments in the slot that strictly
	// contain this one. Presentation only, not an ownership relation.
	NestingLevel int

	// Horizontal placement as fractions of the row width, plus the resolved
	// capped pixel indent.
	WidthFraction float64
	LeftOffset    float64
	IndentPx      int
}

// DurationUnit is the largest whole unit used on a duration label.
type DurationUnit string

const (
	DurationUnitMinutes DurationUnit = "minutes"
	DurationUnitHours   DurationUnit = "hours"
	DurationUnitDays    DurationUnit = "days"
)

// DurationLabel is the human readable time-pressure label of a task.
type DurationLabel struct {
	Text      string
	IsOverdue bool
	Unit      DurationUnit
}

// BoardColumn is one of the four board columns with its cards in stable
// repository order.
type BoardColumn struct {
	Status TaskStatus
	Cards  []TaskCard
}

// TaskCard is a task ready for board rendering, with its duration label
// already computed (nil for statuses that are not time-pressured).
type TaskCard struct {
	Task Task
	Due  *DurationLabel
}

// HourRow is a single hour of the day view with its positioned blocks.
type HourRow struct {
	Hour   int
	Blocks []PositionedBlock
}

// DaySchedule is the day view of the calendar: one row per business-window
// hour.
type DaySchedule struct {
	Date   time.Time
	Window BusinessWindow
	Rows   []HourRow
}

// DaySegments groups the segments of one calendar day, used by the week view.
type DaySegments struct {
	Date     time.Time
	Segments []Segment
}

// WeekSchedule is the Monday-based week view of the calendar.
type WeekSchedule struct {
	Monday time.Time
	Days   []DaySegments
}

// BoardConfig is the externally configured display configuration: the
// business window and the layout tuning.
type BoardConfig struct {
	Window BusinessWindow
	Layout LayoutOptions
}

// DefaultBoardConfig is the board configuration used when no config file is
// provided.
var DefaultBoardConfig = BoardConfig{
	Window: BusinessWindow{StartHour: 9, EndHour: 19},
	Layout: DefaultLayoutOptions,
}
