package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/timezone-service/internal/domain"
)

const timezoneListKey = "timezones:list"

// TimezoneCache is a best-effort Redis cache for the timezone listing. Cache
// failures are logged and swallowed; the caller always has the database.
type TimezoneCache struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewTimezoneCache builds a cache with the given entry TTL.
func NewTimezoneCache(r *Redis, ttl time.Duration, logger *zap.Logger) *TimezoneCache {
	return &TimezoneCache{redis: r, ttl: ttl, logger: logger}
}

// GetList returns the cached listing and whether it was present.
func (c *TimezoneCache) GetList(ctx context.Context) ([]domain.Timezone, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}

	raw, err := c.redis.Client.Get(ctx, timezoneListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("timezone cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var timezones []domain.Timezone
	if err := json.Unmarshal(raw, &timezones); err != nil {
		c.logger.Warn("timezone cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return timezones, true
}

// SetList stores the listing with the configured TTL.
func (c *TimezoneCache) SetList(ctx context.Context, timezones []domain.Timezone) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}

	raw, err := json.Marshal(timezones)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, timezoneListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("timezone cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing.
func (c *TimezoneCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, timezoneListKey).Err(); err != nil {
		c.logger.Warn("timezone cache invalidation failed", zap.Error(err))
	}
}
