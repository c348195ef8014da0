package model

import "time"

// Task is one unit of tracked work. IDs are always assigned by the task store.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	DueDate   string    `json:"dueDate"` // YYYY-MM-DD, or the raw store value when unparseable
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
