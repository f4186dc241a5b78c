package model

import (
	"fmt"
	"time"
)

// TaskStatus represents the board column a task sits in.
type TaskStatus string

const (
	// TaskStatusToDo indicates the task has not been started.
	TaskStatusToDo TaskStatus = "to_do"
	// TaskStatusWorkInProgress indicates the task is being worked on.
	TaskStatusWorkInProgress TaskStatus = "work_in_progress"
	// TaskStatusUnderReview indicates the task is waiting for review.
	TaskStatusUnderReview TaskStatus = "under_review"
	// TaskStatusCompleted indicates the task is done.
	TaskStatusCompleted TaskStatus = "completed"
)

// AllTaskStatuses are the board columns in display order.
var AllTaskStatuses = []TaskStatus{
	TaskStatusToDo,
	TaskStatusWorkInProgress,
	TaskStatusUnderReview,
	TaskStatusCompleted,
}

// ParseTaskStatus returns the typed status for a raw string value.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	switch status {
	case TaskStatusToDo, TaskStatusWorkInProgress, TaskStatusUnderReview, TaskStatusCompleted:
		return status, nil
	}

	return "", fmt.Errorf("unknown task status %q: %w", s, ErrNotValid)
}

// Task represents a board task. The temporal engine treats it as read-mostly
// input, only its status is ever changed and only through the update
// repository.
type Task struct {
	ID         string
	Title      string
	Status     TaskStatus
	StartDate  time.Time
	DueDate    time.Time
	AssignedTo string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UpdatedBy  string
}

// Validate validates a task before it is persisted.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("id is required: %w", ErrNotValid)
	}
	if t.Title == "" {
		return fmt.Errorf("title is required: %w", ErrNotValid)
	}
	if _, err := ParseTaskStatus(string(t.Status)); err != nil {
		return err
	}
	if t.StartDate.IsZero() || t.DueDate.IsZero() {
		return fmt.Errorf("start and due dates are required: %w", ErrNotValid)
	}
	if t.StartDate.After(t.DueDate) {
		return fmt.Errorf("start date must not be after due date: %w", ErrNotValid)
	}

	return nil
}
