package availability

import "errors"

var (
	// ErrCacheMiss is returned when no entry exists for the key.
	ErrCacheMiss = errors.New("availability.cache: miss")

	// ErrCacheUnavailable is returned when the cache backend fails.
	ErrCacheUnavailable = errors.New("availability.cache: backend error")
)
