package repository

// CreateTaskOptions holds the parameters for creating a task in the store.
type CreateTaskOptions struct {
	OwnerID  string
	Title    string
	Category string
	Priority string
	DueDate  string // date-only; converted to a datetime on the wire
	Notes    string
}

// CreatedTask is what the store confirmed for a create. DueDate is in the
// date-only form ListTasks reports, or the submitted value if it is not a date.
type CreatedTask struct {
	ID      string
	DueDate string
}
