// Package availability caches computed per-date availability in Redis.
// Entries are invalidated whenever a booking or cancellation changes
// the counts for a service.
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookcore/appointment-service/internal/domain"
)

const keyPrefix = "availability"

// Cache stores date availability lists keyed by service, staff and
// horizon length.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates the cache. TTL bounds staleness for entries the
// invalidation path never touches, such as counts that change when a
// day rolls over.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetDates returns the cached availability list, or ErrCacheMiss.
func (c *Cache) GetDates(
	ctx context.Context,
	serviceID int64,
	staffID *int64,
	from time.Time,
	horizonDays int,
) ([]domain.DateAvailability, error) {
	data, err := c.client.Get(ctx, datesKey(serviceID, staffID, from, horizonDays)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDates: %v", ErrCacheUnavailable, err)
	}

	var dates []domain.DateAvailability
	if err := json.Unmarshal(data, &dates); err != nil {
		return nil, fmt.Errorf("%w: GetDates - unmarshal: %v", ErrCacheUnavailable, err)
	}

	return dates, nil
}

// SetDates stores an availability list.
func (c *Cache) SetDates(
	ctx context.Context,
	serviceID int64,
	staffID *int64,
	from time.Time,
	horizonDays int,
	dates []domain.DateAvailability,
) error {
	data, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("%w: SetDates - marshal: %v", ErrCacheUnavailable, err)
	}

	key := datesKey(serviceID, staffID, from, horizonDays)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetDates: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate drops every cached entry for a service, across all staff
// and horizon variants.
func (c *Cache) Invalidate(ctx context.Context, serviceID int64) error {
	pattern := fmt.Sprintf("%s:%d:*", keyPrefix, serviceID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("%w: Invalidate - del %s: %v", ErrCacheUnavailable, iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - scan: %v", ErrCacheUnavailable, err)
	}

	return nil
}

func datesKey(serviceID int64, staffID *int64, from time.Time, horizonDays int) string {
	staff := "any"
	if staffID != nil {
		staff = fmt.Sprintf("%d", *staffID)
	}
	return fmt.Sprintf("%s:%d:%s:%s:%d",
		keyPrefix, serviceID, staff, from.Format(domain.DateFormat), horizonDays)
}
