package repository

// CreateTaskOptions holds the fields of a new record. Completed always starts false.
type CreateTaskOptions struct {
	OwnerID  string
	Title    string
	Category string
	Priority string
	DueDate  string
	Notes    string
}

// ListTasksOptions selects the records of one owner.
type ListTasksOptions struct {
	OwnerID string
}
