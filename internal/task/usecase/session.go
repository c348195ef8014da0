package usecase

import (
	"context"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
	"personal-task-sync/pkg/notify"
)

const msgLoadFailed = "Failed to load tasks"

// LoadSession fetches the owner's tasks and replaces the in-memory list and
// the cache with them. Local changes made while the fetch is in flight are
// lost. On failure the cached list stays active and the error is returned.
func (uc *implUseCase) LoadSession(ctx context.Context, sc model.Scope) (task.LoadSessionOutput, error) {
	uc.mu.Lock()
	uc.ensureHydrated(ctx)
	if !sc.HasSession() {
		out := task.LoadSessionOutput{Tasks: uc.snapshot()}
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "task usecase: no session, serving %d cached tasks", len(out.Tasks))
		return out, nil
	}
	gen := uc.generation
	uc.mu.Unlock()

	tasks, err := uc.remote.ListTasks(ctx, sc.OwnerID)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.generation != gen {
		uc.l.Infof(ctx, "task usecase: session for %s ended while loading, discarding result", sc.OwnerID)
		uc.ensureHydrated(ctx)
		return task.LoadSessionOutput{Tasks: uc.snapshot()}, nil
	}

	if err != nil {
		uc.l.Warnf(ctx, "task usecase: load for %s failed, keeping cached list: %v", sc.OwnerID, err)
		uc.notifier.Notify(ctx, notify.Failure(msgLoadFailed))
		return task.LoadSessionOutput{Tasks: uc.snapshot()}, err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	uc.tasks = tasks
	uc.cache.Write(ctx, uc.tasks)
	uc.l.Infof(ctx, "task usecase: reconciled %d tasks for %s", len(tasks), sc.OwnerID)

	return task.LoadSessionOutput{Tasks: uc.snapshot(), Reconciled: true}, nil
}

// Logout drops the in-memory list. The cache is kept, so the next operation
// starts again from the last persisted list.
func (uc *implUseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.tasks = nil
	uc.hydrated = false
	uc.generation++
	uc.l.Debugf(ctx, "task usecase: session cleared")
}
