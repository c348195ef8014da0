package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task/repository/cache"
	pkgLog "personal-task-sync/pkg/log"
)

func TestKey(t *testing.T) {
	if got := cache.Key("", ""); got != "todos" {
		t.Errorf("expected default key, got %q", got)
	}
	if got := cache.Key("alice", "todos"); got != "alice:todos" {
		t.Errorf("expected prefixed key, got %q", got)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	l := pkgLog.NewNop()

	t.Run("Absent Reads Empty", func(t *testing.T) {
		c, err := cache.NewFile(t.TempDir(), "todos", l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := c.Read(ctx)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", got)
		}
	})

	t.Run("Write Then Read", func(t *testing.T) {
		dir := t.TempDir()
		c, _ := cache.NewFile(dir, "todos", l)
		created := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
		want := []model.Task{
			{ID: "99", Title: "Call mom", Category: "personal", Priority: "low", DueDate: "2024-06-01", CreatedAt: created},
			{ID: "1", Title: "Buy milk", Category: "shopping", Completed: true},
		}
		c.Write(ctx, want)

		// A fresh adapter on the same dir sees the list: it survives restarts.
		reopened, _ := cache.NewFile(dir, "todos", l)
		got := reopened.Read(ctx)
		if len(got) != 2 || got[0].ID != "99" || got[1].ID != "1" {
			t.Fatalf("unexpected list %+v", got)
		}
		if !got[0].CreatedAt.Equal(created) || !got[1].Completed {
			t.Errorf("fields not preserved: %+v", got)
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("expected only the cache file, found %d entries", len(entries))
		}
	})

	t.Run("Corrupt Reads Empty", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "todos.json"), []byte("{corrupt"), 0o644)
		c, _ := cache.NewFile(dir, "todos", l)
		if got := c.Read(ctx); len(got) != 0 {
			t.Errorf("expected empty list for corrupt cache, got %+v", got)
		}
	})

	t.Run("Missing Fields Default", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "todos.json"), []byte(`[{"id":"1","title":"Old"}]`), 0o644)
		c, _ := cache.NewFile(dir, "todos", l)
		got := c.Read(ctx)
		if len(got) != 1 || got[0].Notes != "" || got[0].Completed {
			t.Errorf("unexpected defaults %+v", got)
		}
	})

	t.Run("Write Failure Is Swallowed", func(t *testing.T) {
		dir := t.TempDir()
		c, _ := cache.NewFile(dir, "todos", l)
		c.Write(ctx, []model.Task{{ID: "1", Title: "Keep"}})

		// Removing the directory makes every later write fail.
		os.RemoveAll(dir)
		c.Write(ctx, []model.Task{{ID: "2", Title: "Lost"}})

		if got := c.Read(ctx); len(got) != 0 {
			t.Errorf("expected empty list once the directory is gone, got %+v", got)
		}
	})
}
