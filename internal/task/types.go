package task

import (
	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task/projection"
)

// AddInput is the draft of a task to create. ID, Completed and CreatedAt are
// never supplied by the caller.
type AddInput struct {
	Title    string
	Category string
	Priority string
	DueDate  string
	Notes    string
}

// EditInput is a partial update. Nil fields are left unchanged; a blank Title
// keeps the existing title.
type EditInput struct {
	ID       string
	Title    *string
	Category *string
	Priority *string
	DueDate  *string
	Notes    *string
}

// ViewInput holds the ephemeral view parameters.
type ViewInput struct {
	Params projection.Params
}

// MutationOutput reports the effect of a mutation. Applied is false when the
// target id was not in the list.
type MutationOutput struct {
	Task    model.Task
	Applied bool
}

// LoadSessionOutput reports how a session load ended.
type LoadSessionOutput struct {
	Tasks      []model.Task
	Reconciled bool // false when the cached list stayed active
}

// ViewOutput is the projected list plus the category choices.
type ViewOutput struct {
	Tasks      []model.Task
	Categories []string
	Total      int
}
