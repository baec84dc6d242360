package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
