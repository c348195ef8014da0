package store

import "errors"

var (
	ErrMissingFields = errors.New("Owner ID and title are required.")
)
