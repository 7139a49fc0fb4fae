package catalog

import (
	"context"
	"errors"
	"time"
)

// Store is a key/value cache. Get reports a miss as (nil, false, nil);
// an error means the backend itself failed. A ttl of 0 means no expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrUnknownBackend is returned for an unsupported store backend name.
var ErrUnknownBackend = errors.New("catalog: unknown store backend")

// entry wraps stored data with its expiry, for backends without native TTL.
type entry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newEntry(data []byte, ttl time.Duration, now time.Time) entry {
	e := entry{Data: data}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}

	return e
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
