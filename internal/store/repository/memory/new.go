package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"personal-task-sync/internal/store"
	repo "personal-task-sync/internal/store/repository"
)

type implRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]store.Record
}

// New creates an in-process Repository. Records are lost on restart.
func New() repo.Repository {
	return &implRepository{byOwner: make(map[string][]store.Record)}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (store.Record, error) {
	rec := store.Record{
		ID:        uuid.NewString(),
		OwnerID:   opt.OwnerID,
		Title:     opt.Title,
		Category:  opt.Category,
		Priority:  opt.Priority,
		DueDate:   opt.DueDate,
		Notes:     opt.Notes,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.byOwner[opt.OwnerID] = append(r.byOwner[opt.OwnerID], rec)
	r.mu.Unlock()

	return rec, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]store.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]store.Record, len(r.byOwner[opt.OwnerID]))
	copy(records, r.byOwner[opt.OwnerID])
	return records, nil
}
