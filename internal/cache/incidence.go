package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
)

const incidenceKey = "stock:incidences"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// IncidenceCache keeps the last computed incidence list in redis for a short
// TTL. Redis failures degrade to a cache miss; the caller recomputes.
type IncidenceCache struct {
	client redisClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewIncidenceCache constructs redis-backed incidence cache.
func NewIncidenceCache(client redisClient, ttl time.Duration, logger *slog.Logger) *IncidenceCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &IncidenceCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached incidence list, reporting whether a fresh entry
// exists. An empty cached list is a valid hit.
func (c *IncidenceCache) Get(ctx context.Context) ([]model.Incidence, bool) {
	raw, err := c.client.Get(ctx, incidenceKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("incidence cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var incidences []model.Incidence
	if err := json.Unmarshal(raw, &incidences); err != nil {
		c.logger.Warn("incidence cache entry corrupt, discarding", slog.String("error", err.Error()))
		return nil, false
	}
	return incidences, true
}

// Set stores the incidence list with the configured TTL.
func (c *IncidenceCache) Set(ctx context.Context, incidences []model.Incidence) {
	if incidences == nil {
		incidences = []model.Incidence{}
	}
	raw, err := json.Marshal(incidences)
	if err != nil {
		c.logger.Warn("marshal incidences failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, incidenceKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("incidence cache write failed", slog.String("error", err.Error()))
	}
}
