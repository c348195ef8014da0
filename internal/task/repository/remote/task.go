package remote

import (
	"context"
	"time"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task/repository"
	"personal-task-sync/pkg/datemath"
	pkgLog "personal-task-sync/pkg/log"
)

type implRepository struct {
	client *Client
	dates  *datemath.Parser
	l      pkgLog.Logger
	now    func() time.Time
}

// New creates a new task store repository.
func New(client *Client, dates *datemath.Parser, l pkgLog.Logger) repository.RemoteRepository {
	return &implRepository{
		client: client,
		dates:  dates,
		l:      l,
		now:    time.Now,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (repository.CreatedTask, error) {
	dueDate, ok := r.dates.DateTime(opt.DueDate)
	if !ok && opt.DueDate != "" {
		r.l.Debugf(ctx, "remote repository: due date %q is not a date, forwarding as-is", opt.DueDate)
	}

	created, err := r.client.CreateTask(ctx, CreateTaskRequest{
		OwnerID:  opt.OwnerID,
		Title:    opt.Title,
		Category: opt.Category,
		Priority: opt.Priority,
		DueDate:  dueDate,
		Notes:    opt.Notes,
	})
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to create task: %v", err)
		return repository.CreatedTask{}, err
	}

	localDue, _ := r.dates.Date(opt.DueDate)
	return repository.CreatedTask{ID: created.ID, DueDate: localDue}, nil
}

func (r *implRepository) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	stored, err := r.client.ListTasks(ctx, ownerID)
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to list tasks for %s: %v", ownerID, err)
		return nil, err
	}

	// ids must stay unique locally: records without one are skipped, and only
	// the first record of a repeated id is kept.
	tasks := make([]model.Task, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	fetchedAt := r.now()
	for i := range stored {
		t := r.storeToTask(&stored[i], fetchedAt)
		if t.ID == "" {
			r.l.Warnf(ctx, "remote repository: skipping record %d for %s: no id", i, ownerID)
			continue
		}
		if _, dup := seen[t.ID]; dup {
			r.l.Warnf(ctx, "remote repository: skipping record %d for %s: duplicate id %s", i, ownerID, t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// storeToTask is the only place where store field names are translated into
// model.Task. Due dates are reduced to YYYY-MM-DD; values that do not parse
// are kept raw. A missing or unreadable createdAt becomes fetchedAt.
func (r *implRepository) storeToTask(s *StoreTask, fetchedAt time.Time) model.Task {
	id := s.ID
	if id == "" {
		id = s.LegacyID
	}
	title := s.Title
	if title == "" {
		title = s.LegacyTitle
	}

	dueDate, _ := r.dates.Date(s.DueDate)

	createdAt := fetchedAt
	if t, err := r.dates.Parse(s.CreatedAt); err == nil {
		createdAt = t
	}

	return model.Task{
		ID:        id,
		Title:     title,
		Category:  s.Category,
		Priority:  s.Priority,
		DueDate:   dueDate,
		Notes:     s.Notes,
		Completed: s.Completed,
		CreatedAt: createdAt,
	}
}
