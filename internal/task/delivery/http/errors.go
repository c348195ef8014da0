package http

import (
	"errors"
	"net/http"

	"personal-task-sync/internal/task"
	pkgErrors "personal-task-sync/pkg/errors"
)

var (
	errMissingID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be one of all, active, completed")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if msg, ok := task.StoreMessage(err); ok {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, msg)
	}

	switch {
	case errors.Is(err, task.ErrNoSession):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "no active session")
	case errors.Is(err, task.ErrRejectedByStore):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "Unknown error occurred")
	case errors.Is(err, task.ErrNetworkFailure):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task store unreachable")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
