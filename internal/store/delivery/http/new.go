package http

import (
	"personal-task-sync/internal/store"
	"personal-task-sync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc store.UseCase
}

// New creates a new HTTP handler for the task store.
func New(l log.Logger, uc store.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
