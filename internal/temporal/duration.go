// Package temporal implements the task temporal engine: duration labels,
// business-window day segmentation and hour-slot block layout. Everything in
// this package is a pure computation, "now" is always received as an
// argument and no function here touches the system clock.
package temporal

import (
	"fmt"
	"time"

	"github.com/teambeat/teambeat/internal/model"
)

const minutesPerDay = 24 * 60

// FormatDuration returns the human readable time-pressure label for a task
// due at `due`, as seen from `now`. It returns nil for statuses that are not
// time-pressured (under review, completed) and when there is no due date.
//
// The "left" and "overdue" branches bucket independently on the absolute
// minute count: under an hour in minutes, under a day in whole hours, and
// from a day on in days plus the remaining hours.
func FormatDuration(now, due time.Time, status model.TaskStatus) *model.DurationLabel {
	if status == model.TaskStatusUnderReview || status == model.TaskStatusCompleted {
		return nil
	}
	if due.IsZero() {
		return nil
	}

	diff := due.Sub(now)
	if diff >= 0 {
		text, unit := bucketMinutes(int(diff / time.Minute))
		return &model.DurationLabel{
			Text:      text + " left",
			IsOverdue: false,
			Unit:      unit,
		}
	}

	text, unit := bucketMinutes(int(-diff / time.Minute))
	return &model.DurationLabel{
		Text:      text + " overdue",
		IsOverdue: true,
		Unit:      unit,
	}
}

// bucketMinutes formats a non-negative whole minute count into the largest
// sensible unit.
func bucketMinutes(minutes int) (text string, unit model.DurationUnit) {
	switch {
	case minutes < 60:
		return pluralize(minutes, "minute"), model.DurationUnitMinutes
	case minutes < minutesPerDay:
		return pluralize(minutes/60, "hour"), model.DurationUnitHours
	default:
		days := minutes / minutesPerDay
		hours := (minutes / 60) % 24
		return pluralize(days, "day") + " " + pluralize(hours, "hour"), model.DurationUnitDays
	}
}

// pluralize suffixes the unit with "s" unless the magnitude is exactly 1.
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
