package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/teambeat/teambeat/internal/model"
)

// JSONPrinter prints board and calendar information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskItem represents a task in JSON output.
type taskItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"start_date"`
	DueDate    time.Time `json:"due_date"`
	AssignedTo string    `json:"assigned_to,omitempty"`
}

// cardItem represents a board card in JSON output.
type cardItem struct {
	Task taskItem   `json:"task"`
	Due  *labelItem `json:"due,omitempty"`
}

// labelItem represents a duration label in JSON output.
type labelItem struct {
	Text      string `json:"text"`
	IsOverdue bool   `json:"is_overdue"`
	Unit      string `json:"unit"`
}

// columnOutput represents a board column in JSON output.
type columnOutput struct {
	Status string     `json:"status"`
	Cards  []cardItem `json:"cards"`
}

// segmentItem represents a segment in JSON output.
type segmentItem struct {
	TaskID string    `json:"task_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// blockItem represents a positioned block in JSON output.
type blockItem struct {
	Segment       segmentItem `json:"segment"`
	TopPercent    float64     `json:"top_percent"`
	HeightPercent float64     `json:"height_percent"`
	NestingLevel  int         `json:"nesting_level"`
	WidthFraction float64     `json:"width_fraction"`
	LeftOffset    float64     `json:"left_offset"`
	IndentPx      int         `json:"indent_px"`
}

// hourRowOutput represents an hour row in JSON output.
type hourRowOutput struct {
	Hour   int         `json:"hour"`
	Blocks []blockItem `json:"blocks"`
}

// dayScheduleOutput represents the day view in JSON output.
type dayScheduleOutput struct {
	Date      string          `json:"date"`
	StartHour int             `json:"start_hour"`
	EndHour   int             `json:"end_hour"`
	Rows      []hourRowOutput `json:"rows"`
}

// daySegmentsOutput represents one week day in JSON output.
type daySegmentsOutput struct {
	Date     string        `json:"date"`
	Segments []segmentItem `json:"segments"`
}

// weekScheduleOutput represents the week view in JSON output.
type weekScheduleOutput struct {
	Monday string              `json:"monday"`
	Days   []daySegmentsOutput `json:"days"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintBoard prints board columns in JSON format.
func (j *JSONPrinter) PrintBoard(columns []model.BoardColumn) error {
	output := make([]columnOutput, 0, len(columns))
	for _, col := range columns {
		cards := make([]cardItem, 0, len(col.Cards))
		for _, card := range col.Cards {
			item := cardItem{Task: newTaskItem(card.Task)}
			if card.Due != nil {
				item.Due = &labelItem{
					Text:      card.Due.Text,
					IsOverdue: card.Due.IsOverdue,
					Unit:      string(card.Due.Unit),
				}
			}
			cards = append(cards, item)
		}
		output = append(output, columnOutput{Status: string(col.Status), Cards: cards})
	}

	return j.encode(output)
}

// PrintTaskList prints tasks in JSON format.
func (j *JSONPrinter) PrintTaskList(tasks []model.Task) error {
	items := make([]taskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, newTaskItem(t))
	}

	return j.encode(items)
}

// PrintDaySchedule prints the day view in JSON format.
func (j *JSONPrinter) PrintDaySchedule(schedule model.DaySchedule) error {
	rows := make([]hourRowOutput, 0, len(schedule.Rows))
	for _, row := range schedule.Rows {
		blocks := make([]blockItem, 0, len(row.Blocks))
		for _, b := range row.Blocks {
			blocks = append(blocks, blockItem{
				Segment:       newSegmentItem(b.Segment),
				TopPercent:    b.TopPercent,
				HeightPercent: b.HeightPercent,
				NestingLevel:  b.NestingLevel,
				WidthFraction: b.WidthFraction,
				LeftOffset:    b.LeftOffset,
				IndentPx:      b.IndentPx,
			})
		}
		rows = append(rows, hourRowOutput{Hour: row.Hour, Blocks: blocks})
	}

	return j.encode(dayScheduleOutput{
		Date:      schedule.Date.Format("2006-01-02"),
		StartHour: schedule.Window.StartHour,
		EndHour:   schedule.Window.EndHour,
		Rows:      rows,
	})
}

// PrintWeekSchedule prints the week view in JSON format.
func (j *JSONPrinter) PrintWeekSchedule(schedule model.WeekSchedule) error {
	days := make([]daySegmentsOutput, 0, len(schedule.Days))
	for _, day := range schedule.Days {
		segments := make([]segmentItem, 0, len(day.Segments))
		for _, seg := range day.Segments {
			segments = append(segments, newSegmentItem(seg))
		}
		days = append(days, daySegmentsOutput{
			Date:     day.Date.Format("2006-01-02"),
			Segments: segments,
		})
	}

	return j.encode(weekScheduleOutput{
		Monday: schedule.Monday.Format("2006-01-02"),
		Days:   days,
	})
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTaskItem(t model.Task) taskItem {
	return taskItem{
		ID:         t.ID,
		Title:      t.Title,
		Status:     string(t.Status),
		StartDate:  t.StartDate.UTC(),
		DueDate:    t.DueDate.UTC(),
		AssignedTo: t.AssignedTo,
	}
}

func newSegmentItem(s model.Segment) segmentItem {
	return segmentItem{
		TaskID: s.TaskID,
		Start:  s.Start.UTC(),
		End:    s.End.UTC(),
	}
}
