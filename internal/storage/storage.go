package storage

import (
	"context"

	"github.com/teambeat/teambeat/internal/model"
)

// Repository is the task source and task update collaborator of the temporal
// engine. The engine only reads tasks and requests status changes through
// UpdateTaskStatus, the remaining methods exist so the surrounding CLI can
// maintain the task set.
type Repository interface {
	CreateTask(ctx context.Context, t model.Task) error
	GetTask(ctx context.Context, id string) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status model.TaskStatus, updatedBy string) error
	DeleteTask(ctx context.Context, id string) error
}
