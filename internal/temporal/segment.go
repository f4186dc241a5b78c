package temporal

import (
	"time"

	"github.com/teambeat/teambeat/internal/model"
)

// SegmentTask slices the task's [StartDate, DueDate) span into per-calendar-day
// segments clipped to the business window. Days where the task does not
// overlap the window produce no segment, and zero-length results are dropped.
//
// Malformed input (missing dates, start at or after due) yields an empty
// list, never an error: a single bad task must not break the rendering of a
// whole day or week. The calendar walk happens in the start date's location.
func SegmentTask(task model.Task, window model.BusinessWindow) []model.Segment {
	if task.StartDate.IsZero() || task.DueDate.IsZero() {
		return nil
	}
	if !task.StartDate.Before(task.DueDate) {
		return nil
	}
	if err := window.Validate(); err != nil {
		return nil
	}

	loc := task.StartDate.Location()
	start := task.StartDate
	due := task.DueDate.In(loc)

	day := startOfDay(start)
	lastDay := startOfDay(due)

	var segments []model.Segment
	for !day.After(lastDay) {
		// time.Date keeps hour arithmetic correct across DST transitions,
		// and normalizes an EndHour of 24 to next-day midnight.
		winStart := time.Date(day.Year(), day.Month(), day.Day(), window.StartHour, 0, 0, 0, loc)
		winEnd := time.Date(day.Year(), day.Month(), day.Day(), window.EndHour, 0, 0, 0, loc)

		segStart := winStart
		if sameDay(start, day) && start.After(winStart) {
			segStart = start
		}
		segEnd := winEnd
		if sameDay(due, day) && due.Before(winEnd) {
			segEnd = due
		}

		if segStart.Before(segEnd) {
			segments = append(segments, model.Segment{
				TaskID: task.ID,
				Start:  segStart,
				End:    segEnd,
			})
		}

		day = day.AddDate(0, 0, 1)
	}

	return segments
}

// SegmentsOnDay filters segments down to the ones starting on the given
// calendar day (same location as the segments).
func SegmentsOnDay(segments []model.Segment, day time.Time) []model.Segment {
	var result []model.Segment
	for _, s := range segments {
		if sameDay(s.Start, day) {
			result = append(result, s)
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
