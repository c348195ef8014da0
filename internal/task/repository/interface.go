package repository

import (
	"context"

	"personal-task-sync/internal/model"
)

// RemoteRepository is the task store seen from this service.
type RemoteRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (CreatedTask, error)
	ListTasks(ctx context.Context, ownerID string) ([]model.Task, error)
}

// CacheRepository is the durable local copy of the task list. Read and Write
// replace the whole list and never fail the caller: an absent or unreadable
// cache reads as empty and a failed write is only logged.
type CacheRepository interface {
	Read(ctx context.Context) []model.Task
	Write(ctx context.Context, tasks []model.Task)
}
