package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"personal-task-sync/internal/task"
)

// Client is the HTTP wrapper for the task store REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new task store HTTP client. A zero timeout leaves the
// transport without a deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateTask creates a task via POST /tasks.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*CreateTaskResponse, error) {
	endpoint := fmt.Sprintf("%s/tasks", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create task request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create task request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: create task: %v", task.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, storeError(resp)
	}

	var created CreateTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: decode create task response: %v", task.ErrNetworkFailure, err)
	}
	if created.ID == "" {
		return nil, &task.StoreError{StatusCode: resp.StatusCode}
	}
	return &created, nil
}

// ListTasks fetches every task of an owner via GET /tasks/{ownerId}.
func (c *Client) ListTasks(ctx context.Context, ownerID string) ([]StoreTask, error) {
	endpoint := fmt.Sprintf("%s/tasks/%s", c.baseURL, url.PathEscape(ownerID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: list tasks: %v", task.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, storeError(resp)
	}

	var tasks []StoreTask
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w: decode list tasks response: %v", task.ErrNetworkFailure, err)
	}
	return tasks, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// storeError reads the store's {message} body, if there is one.
func storeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)

	return &task.StoreError{StatusCode: resp.StatusCode, Message: body.Message}
}

// ---- Request/Response types scoped to this package ----

// CreateTaskRequest is the body for POST /tasks.
type CreateTaskRequest struct {
	OwnerID  string `json:"ownerId"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	DueDate  string `json:"dueDate"`
	Notes    string `json:"notes"`
}

// CreateTaskResponse is the body of a successful POST /tasks.
type CreateTaskResponse struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

// StoreTask is a task as the store returns it. Older stores use _id and task
// instead of id and title.
type StoreTask struct {
	ID          string `json:"id"`
	LegacyID    string `json:"_id"`
	Title       string `json:"title"`
	LegacyTitle string `json:"task"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Notes       string `json:"notes"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}
