package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-sync/internal/middleware"
	"personal-task-sync/internal/store/repository/memory"
	"personal-task-sync/internal/store/usecase"
	"personal-task-sync/internal/task"
	taskRepo "personal-task-sync/internal/task/repository"
	"personal-task-sync/internal/task/repository/remote"
	"personal-task-sync/pkg/datemath"
	"personal-task-sync/pkg/log"
)

func newServer() *httptest.Server {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r.Group(""), New(l, usecase.New(memory.New(), l)), middleware.New(l, nil, 0))
	return httptest.NewServer(r)
}

func TestStoreHandlers(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	post := func(body string) (*http.Response, map[string]any) {
		resp, err := http.Post(ts.URL+"/tasks", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		defer resp.Body.Close()
		var out map[string]any
		json.NewDecoder(resp.Body).Decode(&out)
		return resp, out
	}

	t.Run("Missing Fields", func(t *testing.T) {
		resp, body := post(`{"ownerId":"owner-1"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
		if body["message"] != "Owner ID and title are required." {
			t.Errorf("unexpected message: %v", body["message"])
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		resp, body := post(`{`)
		if resp.StatusCode != http.StatusBadRequest || body["message"] == "" {
			t.Errorf("expected 400 with message, got %d %v", resp.StatusCode, body)
		}
	})

	t.Run("Created", func(t *testing.T) {
		resp, body := post(`{"ownerId":"owner-1","title":"Buy milk","category":"shopping"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
		if id, _ := body["id"].(string); id == "" {
			t.Errorf("expected id, got %v", body)
		}
		if body["message"] != "Task added successfully!" {
			t.Errorf("unexpected message: %v", body["message"])
		}
	})

	t.Run("List", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/tasks/owner-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		defer resp.Body.Close()

		var records []map[string]any
		json.NewDecoder(resp.Body).Decode(&records)
		if resp.StatusCode != http.StatusOK || len(records) != 1 || records[0]["title"] != "Buy milk" {
			t.Errorf("unexpected list: %d %v", resp.StatusCode, records)
		}
	})
}

// The task service's remote repository must read what this store writes.
func TestStoreRoundTrip(t *testing.T) {
	ts := newServer()
	defer ts.Close()

	ctx := context.Background()
	dates, _ := datemath.NewParser("UTC")
	client := remote.New(remote.NewClient(ts.URL, time.Second), dates, log.NewNop())

	created, err := client.CreateTask(ctx, taskRepo.CreateTaskOptions{
		OwnerID:  "owner 1",
		Title:    "Call mom",
		Category: "personal",
		Priority: "high",
		DueDate:  "2024-06-01T15:30:00Z",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := client.ListTasks(ctx, "owner 1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.ID != created.ID || got.Title != "Call mom" || got.DueDate != "2024-06-01" || got.Completed || got.CreatedAt.IsZero() {
		t.Errorf("unexpected task: %+v", got)
	}
	if created.DueDate != got.DueDate {
		t.Errorf("created due date %q differs from listed %q", created.DueDate, got.DueDate)
	}

	_, err = client.CreateTask(ctx, taskRepo.CreateTaskOptions{OwnerID: "owner 1"})
	if msg, ok := task.StoreMessage(err); !ok || msg != "Owner ID and title are required." {
		t.Errorf("expected store message, got %v", err)
	}
	if !errors.Is(err, task.ErrRejectedByStore) {
		t.Errorf("expected ErrRejectedByStore, got %v", err)
	}
}
