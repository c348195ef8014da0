package http

import (
	"time"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
	"personal-task-sync/internal/task/projection"
)

// --- Request DTOs ---

type listReq struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

func (r listReq) validate() error {
	if _, ok := projection.ParseStatus(r.Status); !ok {
		return errInvalidStatus
	}
	return nil
}

func (r listReq) toInput() task.ViewInput {
	status, _ := projection.ParseStatus(r.Status)
	return task.ViewInput{
		Params: projection.Params{
			Status:   status,
			Category: r.Category,
			Search:   r.Search,
		},
	}
}

// ---

type createReq struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	DueDate  string `json:"dueDate"`
	Notes    string `json:"notes"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.AddInput {
	return task.AddInput{
		Title:    r.Title,
		Category: r.Category,
		Priority: r.Priority,
		DueDate:  r.DueDate,
		Notes:    r.Notes,
	}
}

// ---

type updateReq struct {
	ID       string  `json:"-"` // populated from URI param
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Priority *string `json:"priority"`
	DueDate  *string `json:"dueDate"`
	Notes    *string `json:"notes"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errMissingID
	}
	return nil
}

func (r updateReq) toInput() task.EditInput {
	return task.EditInput{
		ID:       r.ID,
		Title:    r.Title,
		Category: r.Category,
		Priority: r.Priority,
		DueDate:  r.DueDate,
		Notes:    r.Notes,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	DueDate   string    `json:"dueDate"`
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Category:  t.Category,
		Priority:  t.Priority,
		DueDate:   t.DueDate,
		Notes:     t.Notes,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type sessionResp struct {
	Tasks      []taskResp `json:"tasks"`
	Reconciled bool       `json:"reconciled"`
	Warning    string     `json:"warning,omitempty"`
}

func (h *handler) newSessionResp(out task.LoadSessionOutput, warning string) sessionResp {
	return sessionResp{
		Tasks:      newTaskResps(out.Tasks),
		Reconciled: out.Reconciled,
		Warning:    warning,
	}
}

type listResp struct {
	Tasks      []taskResp `json:"tasks"`
	Categories []string   `json:"categories"`
	Total      int        `json:"total"`
}

func (h *handler) newListResp(out task.ViewOutput) listResp {
	return listResp{
		Tasks:      newTaskResps(out.Tasks),
		Categories: out.Categories,
		Total:      out.Total,
	}
}

type mutationResp struct {
	Task    *taskResp `json:"task,omitempty"`
	Applied bool      `json:"applied"`
}

func (h *handler) newMutationResp(out task.MutationOutput) mutationResp {
	if !out.Applied {
		return mutationResp{}
	}
	t := newTaskResp(out.Task)
	return mutationResp{Task: &t, Applied: true}
}
