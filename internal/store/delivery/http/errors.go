package http

import (
	"errors"
	"net/http"

	"personal-task-sync/internal/store"
)

// mapError returns the status and client message for a use-case error.
// Store clients read the message field verbatim.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrMissingFields):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
