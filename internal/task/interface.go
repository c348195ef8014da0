package task

import (
	"context"

	"personal-task-sync/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// LoadSession replaces the local list with the store's list for the scope's owner.
	// Without an owner it is a no-op and the cached list stays active.
	LoadSession(ctx context.Context, sc model.Scope) (LoadSessionOutput, error)
	// Logout clears the in-memory list. The local cache is kept.
	Logout(ctx context.Context)

	// Add creates the task in the store and, once confirmed, prepends it locally.
	Add(ctx context.Context, sc model.Scope, input AddInput) (MutationOutput, error)
	// Toggle, Delete and Edit only touch the in-memory list and the local cache.
	Toggle(ctx context.Context, id string) MutationOutput
	Delete(ctx context.Context, id string) MutationOutput
	Edit(ctx context.Context, input EditInput) MutationOutput

	// View projects the current list through the given view parameters.
	View(ctx context.Context, input ViewInput) ViewOutput
}
