package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/teambeat/teambeat/internal/model"
)

// TablePrinter prints board and calendar information as text tables.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintBoard prints the four board columns with their cards.
func (t *TablePrinter) PrintBoard(columns []model.BoardColumn) error {
	for i, col := range columns {
		if i > 0 {
			fmt.Fprintln(t.writer)
		}
		fmt.Fprintf(t.writer, "%s (%d)\n", StatusTitle(col.Status), len(col.Cards))

		if len(col.Cards) == 0 {
			continue
		}

		tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tTITLE\tASSIGNEE\tDUE")
		for _, card := range col.Cards {
			due := "-"
			if card.Due != nil {
				due = card.Due.Text
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", card.Task.ID, card.Task.Title, card.Task.AssignedTo, due)
		}
		tw.Flush()
	}

	return nil
}

// PrintTaskList prints tasks in a table format.
func (t *TablePrinter) PrintTaskList(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tASSIGNEE\tSTART\tDUE")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Title,
			task.Status,
			task.AssignedTo,
			FormatTimestamp(task.StartDate),
			FormatTimestamp(task.DueDate),
		)
	}

	return nil
}

// PrintDaySchedule prints the day view hour by hour with the positioned
// blocks of each row.
func (t *TablePrinter) PrintDaySchedule(schedule model.DaySchedule) error {
	fmt.Fprintf(t.writer, "Schedule for %s (window %02d:00-%02d:00)\n",
		schedule.Date.Format("2006-01-02"), schedule.Window.StartHour, schedule.Window.EndHour)

	for _, row := range schedule.Rows {
		fmt.Fprintf(t.writer, "%02d:00\n", row.Hour)
		for _, b := range row.Blocks {
			fmt.Fprintf(t.writer, "  %s  %s-%s  top=%.0f%% height=%.0f%% width=%.2f left=%.2f nest=%d indent=%dpx\n",
				b.Segment.TaskID,
				b.Segment.Start.Format("15:04"),
				b.Segment.End.Format("15:04"),
				b.TopPercent,
				b.HeightPercent,
				b.WidthFraction,
				b.LeftOffset,
				b.NestingLevel,
				b.IndentPx,
			)
		}
	}

	return nil
}

// PrintWeekSchedule prints a week of segments, one day per section.
func (t *TablePrinter) PrintWeekSchedule(schedule model.WeekSchedule) error {
	fmt.Fprintf(t.writer, "Week of %s\n", schedule.Monday.Format("2006-01-02"))

	for _, day := range schedule.Days {
		fmt.Fprintf(t.writer, "%s %s\n", day.Date.Format("Mon"), day.Date.Format("2006-01-02"))
		for _, seg := range day.Segments {
			fmt.Fprintf(t.writer, "  %s  %s-%s (%dm)\n",
				seg.TaskID,
				seg.Start.Format("15:04"),
				seg.End.Format("15:04"),
				seg.Minutes(),
			)
		}
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

// StatusTitle returns the human board column title for a status.
func StatusTitle(status model.TaskStatus) string {
	switch status {
	case model.TaskStatusToDo:
		return "To Do"
	case model.TaskStatusWorkInProgress:
		return "Work In Progress"
	case model.TaskStatusUnderReview:
		return "Under Review"
	case model.TaskStatusCompleted:
		return "Completed"
	}

	// Unknown statuses never reach printers, but keep the output readable
	// in case one does.
	return strings.ReplaceAll(string(status), "_", " ")
}
