package http

import (
	"time"

	"personal-task-sync/internal/store"
)

const msgCreated = "Task added successfully!"

// --- Request DTOs ---

type createReq struct {
	OwnerID  string `json:"ownerId"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	DueDate  string `json:"dueDate"`
	Notes    string `json:"notes"`
}

func (r createReq) toInput() store.CreateInput {
	return store.CreateInput{
		OwnerID:  r.OwnerID,
		Title:    r.Title,
		Category: r.Category,
		Priority: r.Priority,
		DueDate:  r.DueDate,
		Notes:    r.Notes,
	}
}

// --- Response DTOs ---

type messageResp struct {
	Message string `json:"message"`
}

type createResp struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (h *handler) newCreateResp(out store.CreateOutput) createResp {
	return createResp{Message: msgCreated, ID: out.ID}
}

type recordResp struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	DueDate   string    `json:"dueDate"`
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *handler) newListResp(out store.ListOutput) []recordResp {
	resp := make([]recordResp, len(out.Records))
	for i, rec := range out.Records {
		resp[i] = recordResp{
			ID:        rec.ID,
			OwnerID:   rec.OwnerID,
			Title:     rec.Title,
			Category:  rec.Category,
			Priority:  rec.Priority,
			DueDate:   rec.DueDate,
			Notes:     rec.Notes,
			Completed: rec.Completed,
			CreatedAt: rec.CreatedAt,
		}
	}
	return resp
}
