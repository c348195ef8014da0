package usecase

import (
	"context"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
	"personal-task-sync/internal/task/repository"
	"personal-task-sync/pkg/notify"
)

const (
	msgAdded   = "Task added successfully!"
	msgDeleted = "Task deleted successfully!"
	msgUpdated = "Task updated successfully!"
)

// Add creates the task in the store first and only then prepends it locally,
// so every local task carries a store-assigned id. Title validation is left to
// the store.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input task.AddInput) (task.MutationOutput, error) {
	if !sc.HasSession() {
		uc.notifier.Notify(ctx, notify.Failure(addFailureMessage(task.ErrNoSession)))
		return task.MutationOutput{}, task.ErrNoSession
	}

	confirmed, err := uc.remote.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:  sc.OwnerID,
		Title:    input.Title,
		Category: input.Category,
		Priority: input.Priority,
		DueDate:  input.DueDate,
		Notes:    input.Notes,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: add rejected: %v", err)
		uc.notifier.Notify(ctx, notify.Failure(addFailureMessage(err)))
		return task.MutationOutput{}, err
	}

	created := model.Task{
		ID:        confirmed.ID,
		Title:     input.Title,
		Category:  input.Category,
		Priority:  input.Priority,
		DueDate:   confirmed.DueDate,
		Notes:     input.Notes,
		Completed: false,
		CreatedAt: uc.now(),
	}

	uc.mu.Lock()
	uc.ensureHydrated(ctx)
	next := make([]model.Task, 0, len(uc.tasks)+1)
	next = append(next, created)
	for _, t := range uc.tasks {
		if t.ID != confirmed.ID {
			next = append(next, t)
		}
	}
	uc.commit(ctx, next)
	uc.mu.Unlock()

	uc.notifier.Notify(ctx, notify.Success(msgAdded))
	return task.MutationOutput{Task: created, Applied: true}, nil
}

// Toggle flips the completion flag locally.
func (uc *implUseCase) Toggle(ctx context.Context, id string) task.MutationOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.update(ctx, id, func(t *model.Task) {
		t.Completed = !t.Completed
	})
}

// Delete removes the task locally.
func (uc *implUseCase) Delete(ctx context.Context, id string) task.MutationOutput {
	uc.mu.Lock()
	uc.ensureHydrated(ctx)

	idx := uc.indexOf(id)
	if idx < 0 {
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "task usecase: delete %s: %v", id, task.ErrNotFound)
		return task.MutationOutput{}
	}

	removed := uc.tasks[idx]
	next := make([]model.Task, 0, len(uc.tasks)-1)
	next = append(next, uc.tasks[:idx]...)
	next = append(next, uc.tasks[idx+1:]...)
	uc.commit(ctx, next)
	uc.mu.Unlock()

	uc.notifier.Notify(ctx, notify.Success(msgDeleted))
	return task.MutationOutput{Task: removed, Applied: true}
}

// Edit merges the patch into the task locally.
func (uc *implUseCase) Edit(ctx context.Context, input task.EditInput) task.MutationOutput {
	uc.mu.Lock()
	out := uc.update(ctx, input.ID, func(t *model.Task) {
		if input.Title != nil {
			t.Title = coalesce(*input.Title, t.Title)
		}
		if input.Category != nil {
			t.Category = *input.Category
		}
		if input.Priority != nil {
			t.Priority = *input.Priority
		}
		if input.DueDate != nil {
			t.DueDate = *input.DueDate
		}
		if input.Notes != nil {
			t.Notes = *input.Notes
		}
	})
	uc.mu.Unlock()

	if out.Applied {
		uc.notifier.Notify(ctx, notify.Success(msgUpdated))
	}
	return out
}

// update applies fn to a copy of the task with the given id and commits the
// new list. Callers hold mu.
func (uc *implUseCase) update(ctx context.Context, id string, fn func(*model.Task)) task.MutationOutput {
	uc.ensureHydrated(ctx)

	idx := uc.indexOf(id)
	if idx < 0 {
		uc.l.Debugf(ctx, "task usecase: update %s: %v", id, task.ErrNotFound)
		return task.MutationOutput{}
	}

	next := make([]model.Task, len(uc.tasks))
	copy(next, uc.tasks)
	fn(&next[idx])
	uc.commit(ctx, next)

	return task.MutationOutput{Task: next[idx], Applied: true}
}
