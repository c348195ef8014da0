package usecase

import (
	"sync"
	"time"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task/repository"
	pkgLog "personal-task-sync/pkg/log"
	"personal-task-sync/pkg/notify"
)

// implUseCase owns the in-memory task list. Every state transition runs under
// mu to completion; network calls are made without holding it.
type implUseCase struct {
	l        pkgLog.Logger
	remote   repository.RemoteRepository
	cache    repository.CacheRepository
	notifier notify.INotifier
	now      func() time.Time

	mu         sync.Mutex
	tasks      []model.Task
	hydrated   bool
	generation uint64 // bumped on logout; stale loads are discarded
}

// New creates a new task UseCase instance. The list is hydrated from the
// cache on first use.
func New(
	l pkgLog.Logger,
	remote repository.RemoteRepository,
	cache repository.CacheRepository,
	notifier notify.INotifier,
) *implUseCase {
	if notifier == nil {
		notifier = notify.NewLogNotifier(l)
	}
	return &implUseCase{
		l:        l,
		remote:   remote,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}
