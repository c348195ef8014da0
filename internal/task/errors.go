package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrNetworkFailure   = errors.New("task store unreachable")
	ErrRejectedByStore  = errors.New("task store rejected the request")
	ErrCacheUnavailable = errors.New("local cache unavailable")
	ErrNotFound         = errors.New("task not found")
	ErrNoSession        = errors.New("no active session")
)

// StoreError is a non-2xx answer from the task store. Message is the store's
// own message and may be empty.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("task store responded %d", e.StatusCode)
	}
	return fmt.Sprintf("task store responded %d: %s", e.StatusCode, e.Message)
}

func (e *StoreError) Unwrap() error {
	return ErrRejectedByStore
}

// StoreMessage returns the store-supplied message carried by err, if any.
func StoreMessage(err error) (string, bool) {
	var se *StoreError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message, true
	}
	return "", false
}
