package postgre

import (
	"context"

	"github.com/google/uuid"

	"personal-task-sync/internal/store"
	repo "personal-task-sync/internal/store/repository"
)

// CreateTask inserts a new row and returns the created record.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (store.Record, error) {
	const query = `
		INSERT INTO tasks (id, owner_id, title, category, priority, due_date, notes, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING id, owner_id, title, category, priority, due_date, notes, completed, created_at`

	var rec store.Record
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, opt.Category, opt.Priority, opt.DueDate, opt.Notes,
	).Scan(
		&rec.ID, &rec.OwnerID, &rec.Title, &rec.Category, &rec.Priority, &rec.DueDate, &rec.Notes, &rec.Completed, &rec.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return store.Record{}, repo.ErrFailedToInsert
	}
	return rec, nil
}

// ListTasks returns the owner's rows in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]store.Record, error) {
	const query = `
		SELECT id, owner_id, title, category, priority, due_date, notes, completed, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, query, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	records := make([]store.Record, 0)
	for rows.Next() {
		var rec store.Record
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Category, &rec.Priority, &rec.DueDate, &rec.Notes, &rec.Completed, &rec.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return records, nil
}
