package notifier

import "errors"

var (
	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse is returned on an unexpected endpoint response.
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrServiceDegraded wraps delivery failures. The endpoint being
	// down must never fail a booking, so callers log this and move on.
	ErrServiceDegraded = errors.New("notifier unavailable: event not delivered")
)
