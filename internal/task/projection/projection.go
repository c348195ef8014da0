package projection

import (
	"strings"

	"personal-task-sync/internal/model"
)

// Status selects tasks by completion.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"

	// CategoryAll disables the category filter.
	CategoryAll = "all"
)

// DefaultCategories are always offered as filter choices, in this order.
var DefaultCategories = []string{CategoryAll, "work", "personal", "shopping"}

// Params are the view parameters. Zero values mean "no filtering".
type Params struct {
	Status   Status
	Category string
	Search   string
}

// ParseStatus validates a status filter; the empty string means all.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "", StatusAll:
		return StatusAll, true
	case StatusActive, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// Project returns the tasks that pass the status, text and category filters,
// in their input order. The input slice is never modified.
func Project(tasks []model.Task, params Params) []model.Task {
	term := strings.ToLower(params.Search)

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchStatus(t, params.Status) {
			continue
		}
		if !matchSearch(t, term) {
			continue
		}
		if !matchCategory(t, params.Category) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Categories returns the default categories followed by every distinct
// category present in tasks, in first-appearance order.
func Categories(tasks []model.Task) []string {
	seen := make(map[string]struct{}, len(DefaultCategories)+len(tasks))
	out := make([]string, 0, len(DefaultCategories)+len(tasks))

	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range DefaultCategories {
		add(c)
	}
	for _, t := range tasks {
		add(t.Category)
	}
	return out
}

func matchStatus(t model.Task, status Status) bool {
	switch status {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

// term is already lower-cased.
func matchSearch(t model.Task, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}

// Category matching is exact and case-sensitive.
func matchCategory(t model.Task, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return t.Category == category
}
