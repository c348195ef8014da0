package usecase

import (
	"context"
	"errors"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
)

// ensureHydrated loads the cached list the first time the list is needed
// after start-up or logout. Callers hold mu.
func (uc *implUseCase) ensureHydrated(ctx context.Context) {
	if uc.hydrated {
		return
	}
	uc.tasks = uc.cache.Read(ctx)
	uc.hydrated = true
	uc.l.Debugf(ctx, "task usecase: hydrated %d tasks from cache", len(uc.tasks))
}

// commit swaps in the new list and persists it. Callers hold mu.
func (uc *implUseCase) commit(ctx context.Context, next []model.Task) {
	uc.tasks = next
	uc.cache.Write(ctx, next)
}

// indexOf returns the position of id in the list, or -1. Callers hold mu.
func (uc *implUseCase) indexOf(id string) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the list so callers never share the backing array.
func (uc *implUseCase) snapshot() []model.Task {
	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out
}

// coalesce returns newVal unless it is empty.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// addFailureMessage carries the store's message when there is one.
func addFailureMessage(err error) string {
	if msg, ok := task.StoreMessage(err); ok {
		return "Failed to add task: " + msg
	}
	if errors.Is(err, task.ErrNoSession) {
		return "Failed to add task: no active session"
	}
	return "Failed to add task: Unknown error occurred"
}
