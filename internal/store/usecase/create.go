package usecase

import (
	"context"
	"strings"

	"personal-task-sync/internal/store"
	repo "personal-task-sync/internal/store/repository"
)

// Create stores a new record. Owner and title are mandatory.
func (uc *implUseCase) Create(ctx context.Context, input store.CreateInput) (store.CreateOutput, error) {
	if strings.TrimSpace(input.OwnerID) == "" || strings.TrimSpace(input.Title) == "" {
		return store.CreateOutput{}, store.ErrMissingFields
	}

	rec, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:  input.OwnerID,
		Title:    input.Title,
		Category: input.Category,
		Priority: input.Priority,
		DueDate:  input.DueDate,
		Notes:    input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return store.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "store: created task %s for %s", rec.ID, rec.OwnerID)
	return store.CreateOutput{ID: rec.ID}, nil
}

// List returns the owner's records, oldest first. Unknown owners get an empty list.
func (uc *implUseCase) List(ctx context.Context, ownerID string) (store.ListOutput, error) {
	records, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return store.ListOutput{}, err
	}
	return store.ListOutput{Records: records}, nil
}
