package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-task-sync/internal/store/repository"
	"personal-task-sync/pkg/log"
)

var schema = []string{`
	CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		priority   TEXT NOT NULL DEFAULT '',
		due_date   TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		completed  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		seq        BIGSERIAL
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_owner_seq_idx ON tasks (owner_id, seq)`,
}

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the task store.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("store/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Connect opens a pool, pings it and makes sure the schema exists.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return pool, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("store/repository/postgre.%s", method)
}
