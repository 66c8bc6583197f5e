// Package cache provides small typed key/value caches used for read-mostly reference data.
package cache

import (
	"context"
	"time"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Manager is a typed cache. Get reports false on a miss or an undecodable entry.
type Manager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
	// Backend names the storage, for logs and metrics.
	Backend() string
}
