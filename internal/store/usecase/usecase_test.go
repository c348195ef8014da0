package usecase

import (
	"context"
	"errors"
	"testing"

	"personal-task-sync/internal/store"
	repo "personal-task-sync/internal/store/repository"
	"personal-task-sync/internal/store/repository/memory"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type failingRepo struct{}

func (failingRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (store.Record, error) {
	return store.Record{}, repo.ErrFailedToInsert
}

func (failingRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]store.Record, error) {
	return nil, repo.ErrFailedToList
}

func TestStoreUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Fields", func(t *testing.T) {
		uc := New(memory.New(), &mockLogger{})
		for _, input := range []store.CreateInput{
			{Title: "x"},
			{OwnerID: "owner-1"},
			{OwnerID: "owner-1", Title: "   "},
		} {
			if _, err := uc.Create(ctx, input); !errors.Is(err, store.ErrMissingFields) {
				t.Errorf("%+v: expected ErrMissingFields, got %v", input, err)
			}
		}
	})

	t.Run("Create Then List In Order", func(t *testing.T) {
		uc := New(memory.New(), &mockLogger{})
		first, err := uc.Create(ctx, store.CreateInput{OwnerID: "owner-1", Title: "first"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _ := uc.Create(ctx, store.CreateInput{OwnerID: "owner-1", Title: "second", Notes: "n"})
		uc.Create(ctx, store.CreateInput{OwnerID: "owner-2", Title: "other"})

		if first.ID == "" || first.ID == second.ID {
			t.Fatalf("expected distinct ids, got %q and %q", first.ID, second.ID)
		}

		out, err := uc.List(ctx, "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Records) != 2 || out.Records[0].ID != first.ID || out.Records[1].ID != second.ID {
			t.Errorf("unexpected records: %+v", out.Records)
		}
		if out.Records[1].Completed || out.Records[1].Notes != "n" {
			t.Errorf("unexpected record: %+v", out.Records[1])
		}
	})

	t.Run("Unknown Owner Is Empty", func(t *testing.T) {
		uc := New(memory.New(), &mockLogger{})
		out, err := uc.List(ctx, "nobody")
		if err != nil || out.Records == nil || len(out.Records) != 0 {
			t.Errorf("expected empty list, got %v, %v", out.Records, err)
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		uc := New(failingRepo{}, &mockLogger{})
		if _, err := uc.Create(ctx, store.CreateInput{OwnerID: "o", Title: "t"}); !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
		if _, err := uc.List(ctx, "o"); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}
