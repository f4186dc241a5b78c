package printer

import "github.com/teambeat/teambeat/internal/model"

// Printer knows how to print board and calendar information in different
// formats.
type Printer interface {
	PrintBoard(columns []model.BoardColumn) error
	PrintTaskList(tasks []model.Task) error
	PrintDaySchedule(schedule model.DaySchedule) error
	PrintWeekSchedule(schedule model.WeekSchedule) error
	PrintMessage(msg string) error
}
