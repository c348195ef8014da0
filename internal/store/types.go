package store

import "time"

// Record is a task as the store keeps it. DueDate is kept exactly as the
// client sent it.
type Record struct {
	ID        string
	OwnerID   string
	Title     string
	Category  string
	Priority  string
	DueDate   string
	Notes     string
	Completed bool
	CreatedAt time.Time
}

// CreateInput is the body of a create request.
type CreateInput struct {
	OwnerID  string
	Title    string
	Category string
	Priority string
	DueDate  string
	Notes    string
}

// CreateOutput carries the id assigned to a new record.
type CreateOutput struct {
	ID string
}

// ListOutput is an owner's records, oldest first.
type ListOutput struct {
	Records []Record
}
