package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

// RedisManager shares values across processes; entries are JSON encoded
// under "<prefix>:<useCase>:<key>".
type RedisManager[V any] struct {
	rdb        redis.UniversalClient
	prefix     string
	defaultTTL time.Duration
	log        *logger.Logger
}

func NewRedisManager[V any](rdb redis.UniversalClient, prefix, useCase string, defaultTTL time.Duration, baseLog *logger.Logger) *RedisManager[V] {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultExpiration
	}
	prefix = strings.Trim(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = "sigc"
	}
	return &RedisManager[V]{
		rdb:        rdb,
		prefix:     prefix + ":" + useCase,
		defaultTTL: defaultTTL,
		log:        baseLog.With("cache", useCase, "backend", "redis"),
	}
}

func (c *RedisManager[V]) key(k string) string { return c.prefix + ":" + k }

func (c *RedisManager[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("redis get failed", "key", key, "error", err)
		}
		return zero, false
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.Error("redis value decode failed", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

// Set is best effort: a failed write only costs a later miss.
func (c *RedisManager[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Error("redis value encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		c.log.Warn("redis set failed", "key", key, "error", err)
	}
}

func (c *RedisManager[V]) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, c.key(k))
	}
	return c.rdb.Del(ctx, full...).Err()
}

// Flush removes every key under this manager's prefix.
func (c *RedisManager[V]) Flush(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= 100 {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.rdb.Del(ctx, batch...).Err()
	}
	return nil
}

func (c *RedisManager[V]) Backend() string { return "redis" }
