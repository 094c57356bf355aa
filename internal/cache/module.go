package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/config"
)

// Module wires redis client and incidence cache.
var Module = fx.Options(
	fx.Provide(newRedisClient, newIncidenceCache),
	fx.Invoke(registerLifecycle),
)

func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
}

type cacheParams struct {
	fx.In

	Client *redis.Client
	Config *config.Config
	Logger *slog.Logger
}

func newIncidenceCache(p cacheParams) *IncidenceCache {
	return NewIncidenceCache(p.Client, p.Config.IncidenceCacheTTL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
}
