package repository

import (
	"context"

	"personal-task-sync/internal/store"
)

// Repository persists task records.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (store.Record, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]store.Record, error)
}
