package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	types "github.com/sigc-piloto/sigc-backend/internal/domain"
	"github.com/sigc-piloto/sigc-backend/internal/platform/cache"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type Clients struct {
	Redis        *redis.Client
	CatalogCache cache.Manager[types.Institution]
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	if cfg.Redis.Addr == "" {
		return Clients{
			CatalogCache: cache.NewInMemoryManager[types.Institution]("catalog", cfg.CacheTTL, 2*cfg.CacheTTL, log),
		}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return Clients{}, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("Catalog cache backed by Redis", "addr", cfg.Redis.Addr)
	return Clients{
		Redis:        rdb,
		CatalogCache: cache.NewRedisManager[types.Institution](rdb, cfg.Redis.Prefix, "catalog", cfg.CacheTTL, log),
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
