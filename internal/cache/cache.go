package cache

import (
	"context"
	"time"
)

// Cache is a small JSON cache used for dashboard snapshots. Implementations
// must treat a miss as (false, nil), not an error.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
