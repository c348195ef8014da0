package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-task-sync/internal/task"
	"personal-task-sync/internal/task/repository/remote"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req remote.CreateTaskRequest
		json.NewDecoder(r.Body).Decode(&req)
		switch req.Title {
		case "":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Owner ID and title are required."}`))
		case "db down":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "db down"}`))
		case "no body":
			w.WriteHeader(http.StatusBadGateway)
		case "no id":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message": "Task added successfully!", "id": "99"}`))
		}
	})

	mux.HandleFunc("/tasks/owner-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id": "1", "title": "Buy milk", "category": "shopping", "completed": false}]`))
	})
	mux.HandleFunc("/tasks/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{not json`))
	})
	mux.HandleFunc("/tasks/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "owner not found"}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := remote.NewClient(ts.URL+"/", 0)
	ctx := context.Background()

	t.Run("CreateTask", func(t *testing.T) {
		res, err := client.CreateTask(ctx, remote.CreateTaskRequest{OwnerID: "owner-1", Title: "Call mom"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "99" {
			t.Errorf("expected id 99, got %q", res.ID)
		}
	})

	t.Run("CreateTask Rejected With Message", func(t *testing.T) {
		_, err := client.CreateTask(ctx, remote.CreateTaskRequest{OwnerID: "owner-1", Title: "db down"})
		if !errors.Is(err, task.ErrRejectedByStore) {
			t.Fatalf("expected ErrRejectedByStore, got %v", err)
		}
		msg, ok := task.StoreMessage(err)
		if !ok || msg != "db down" {
			t.Errorf("expected store message 'db down', got %q", msg)
		}
	})

	t.Run("CreateTask Rejected Without Message", func(t *testing.T) {
		_, err := client.CreateTask(ctx, remote.CreateTaskRequest{Title: "no body"})
		if !errors.Is(err, task.ErrRejectedByStore) {
			t.Fatalf("expected ErrRejectedByStore, got %v", err)
		}
		if _, ok := task.StoreMessage(err); ok {
			t.Errorf("expected no store message")
		}
	})

	t.Run("CreateTask Missing ID", func(t *testing.T) {
		_, err := client.CreateTask(ctx, remote.CreateTaskRequest{Title: "no id"})
		if !errors.Is(err, task.ErrRejectedByStore) {
			t.Errorf("expected ErrRejectedByStore, got %v", err)
		}
	})

	t.Run("ListTasks", func(t *testing.T) {
		res, err := client.ListTasks(ctx, "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].Title != "Buy milk" {
			t.Errorf("unexpected list result: %+v", res)
		}
	})

	t.Run("ListTasks Undecodable", func(t *testing.T) {
		_, err := client.ListTasks(ctx, "broken")
		if !errors.Is(err, task.ErrNetworkFailure) {
			t.Errorf("expected ErrNetworkFailure, got %v", err)
		}
	})

	t.Run("ListTasks Non 2xx", func(t *testing.T) {
		_, err := client.ListTasks(ctx, "gone")
		var se *task.StoreError
		if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 StoreError, got %v", err)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := remote.NewClient("http://localhost:59999", 0)
		_, err := badClient.ListTasks(ctx, "owner-1")
		if !errors.Is(err, task.ErrNetworkFailure) {
			t.Errorf("expected ErrNetworkFailure, got %v", err)
		}
	})
}
