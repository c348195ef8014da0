package usecase

import (
	"personal-task-sync/internal/store/repository"
	"personal-task-sync/pkg/log"
)

// implUseCase is the private implementation of store.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new store UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
