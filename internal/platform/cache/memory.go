package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

// InMemoryManager keeps values in process memory.
type InMemoryManager[V any] struct {
	useCase string
	cache   *gocache.Cache
	log     *logger.Logger
}

func NewInMemoryManager[V any](useCase string, defaultExpiration, cleanupInterval time.Duration, baseLog *logger.Logger) *InMemoryManager[V] {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	if defaultExpiration <= 0 {
		defaultExpiration = DefaultExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &InMemoryManager[V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
		log:     baseLog.With("cache", useCase, "backend", "memory"),
	}
}

func (c *InMemoryManager[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}
	v, ok := value.(V)
	if !ok {
		c.log.Error("wrong type assertion when getting value", "key", key)
		return zero, false
	}
	return v, true
}

// Set stores value; a zero ttl uses the manager's default expiration.
func (c *InMemoryManager[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
}

func (c *InMemoryManager[V]) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.cache.Delete(key)
	}
	return nil
}

func (c *InMemoryManager[V]) Flush(_ context.Context) error {
	c.cache.Flush()
	return nil
}

func (c *InMemoryManager[V]) Backend() string { return "memory" }
