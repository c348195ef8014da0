package usecase

import (
	"context"
	"sync"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task/repository"
	"personal-task-sync/pkg/notify"
)

// Mock logger for testing
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

// Mock task store
type mockRemote struct {
	createFunc func(ctx context.Context, opt repository.CreateTaskOptions) (repository.CreatedTask, error)
	listFunc   func(ctx context.Context, ownerID string) ([]model.Task, error)
	creates    []repository.CreateTaskOptions
}

func (m *mockRemote) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (repository.CreatedTask, error) {
	m.creates = append(m.creates, opt)
	if m.createFunc != nil {
		return m.createFunc(ctx, opt)
	}
	return repository.CreatedTask{}, nil
}

func (m *mockRemote) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, ownerID)
	}
	return nil, nil
}

// In-memory cache recording every write
type memoryCache struct {
	mu     sync.Mutex
	tasks  []model.Task
	writes int
}

func (c *memoryCache) Read(ctx context.Context) []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

func (c *memoryCache) Write(ctx context.Context, tasks []model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = make([]model.Task, len(tasks))
	copy(c.tasks, tasks)
	c.writes++
}

func (c *memoryCache) snapshot() ([]model.Task, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out, c.writes
}

// Notifier recording every notification
type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (n *recordingNotifier) Notify(ctx context.Context, msg notify.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *recordingNotifier) last() (notify.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return notify.Notification{}, false
	}
	return n.sent[len(n.sent)-1], true
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func sameIDs(tasks []model.Task, want ...string) bool {
	got := ids(tasks)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
