package usecase

import (
	"context"

	"personal-task-sync/internal/task"
	"personal-task-sync/internal/task/projection"
)

// View projects a snapshot of the list. Nothing is cached between calls.
func (uc *implUseCase) View(ctx context.Context, input task.ViewInput) task.ViewOutput {
	uc.mu.Lock()
	uc.ensureHydrated(ctx)
	tasks := uc.snapshot()
	uc.mu.Unlock()

	visible := projection.Project(tasks, input.Params)
	return task.ViewOutput{
		Tasks:      visible,
		Categories: projection.Categories(tasks),
		Total:      len(tasks),
	}
}
