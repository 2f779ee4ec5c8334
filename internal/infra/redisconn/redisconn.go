// Package redisconn constructs the shared Redis client used as the L2
// cache, job store, and rate-limit counter backend (spec.md §4.7/§4.9/§4.10),
// adapted from the pack's early-connect-and-ping pattern in its gin bootstrap.
package redisconn

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rendis/resumegen/internal/infra/config"
)

const pingTimeout = 2 * time.Second

// Connect builds a *redis.Client from cfg and verifies it's reachable with a
// bounded Ping. If cfg.Cache.Enabled is false, or the ping fails, it returns
// a nil client and a nil error: callers (cache.New, jobqueue, ratelimit) all
// treat a nil client as "run in degraded/fallback mode" rather than as a
// fatal startup condition.
func Connect(ctx context.Context, cfg config.RedisConfig, cacheEnabled bool, log *slog.Logger) *redis.Client {
	if log == nil {
		log = slog.Default()
	}
	if !cacheEnabled {
		log.InfoContext(ctx, "cache disabled by config, skipping redis connection")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		DB:       cfg.DB,
		Password: cfg.Password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WarnContext(ctx, "redis ping failed, continuing in degraded mode",
			"addr", cfg.Addr(), "err", err)
		_ = client.Close()
		return nil
	}

	log.InfoContext(ctx, "connected to redis", "addr", fmt.Sprintf("%s/%d", cfg.Addr(), cfg.DB))
	return client
}
