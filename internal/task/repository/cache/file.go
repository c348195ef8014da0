package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
	"personal-task-sync/internal/task/repository"
	pkgLog "personal-task-sync/pkg/log"
)

type fileCache struct {
	path string
	l    pkgLog.Logger
}

// NewFile stores the task list as <dir>/<key>.json.
func NewFile(dir, key string, l pkgLog.Logger) (repository.CacheRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache file: create dir %s: %w", dir, err)
	}
	return &fileCache{
		path: filepath.Join(dir, key+".json"),
		l:    l,
	}, nil
}

func (c *fileCache) Read(ctx context.Context) []model.Task {
	tasks, err := c.load()
	if err != nil {
		c.l.Warnf(ctx, "cache file: read %s: %v", c.path, err)
	}
	return tasks
}

func (c *fileCache) Write(ctx context.Context, tasks []model.Task) {
	if err := c.store(tasks); err != nil {
		c.l.Warnf(ctx, "cache file: write %s: %v", c.path, err)
	}
}

func (c *fileCache) load() ([]model.Task, error) {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return []model.Task{}, fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err)
	}
	return decode(raw)
}

// store writes to a temp file and renames it over the old one so readers see
// either the previous list or the new one.
func (c *fileCache) store(tasks []model.Task) error {
	raw, err := encode(tasks)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err)
	}
	return nil
}
