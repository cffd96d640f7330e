package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

// channelConfigSource is the authoritative store behind the cache.
type channelConfigSource interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error)
}

// ChannelConfigCache is a read-through cache of per-user channel configs.
// Redis failures degrade to reading the source; they are logged, never returned.
type ChannelConfigCache struct {
	client goredis.Cmdable
	source channelConfigSource
	ttl    time.Duration
	log    *slog.Logger
}

// NewChannelConfigCache creates a cache in front of source.
func NewChannelConfigCache(log *slog.Logger, client goredis.Cmdable, source channelConfigSource, ttl time.Duration) *ChannelConfigCache {
	return &ChannelConfigCache{
		client: client,
		source: source,
		ttl:    ttl,
		log:    log.With("component", "channel_config_cache"),
	}
}

func channelConfigKey(userID uuid.UUID) string {
	return fmt.Sprintf("channel_config:%s", userID)
}

// Get returns the config of userID from Redis, falling back to the source
// and populating Redis on a miss. Source errors (including domain.ErrNotFound)
// are returned as is.
func (c *ChannelConfigCache) Get(ctx context.Context, userID uuid.UUID) (*domain.ChannelConfig, error) {
	key := channelConfigKey(userID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cfg domain.ChannelConfig
		if jsonErr := json.Unmarshal(raw, &cfg); jsonErr == nil {
			return &cfg, nil
		}
		c.log.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", key))
	case errors.Is(err, goredis.Nil):
	default:
		c.log.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	cfg, err := c.source.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, cfg)
	return cfg, nil
}

// Invalidate drops the cached config of userID.
func (c *ChannelConfigCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, channelConfigKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate channel config %s: %w", userID, err)
	}
	return nil
}

func (c *ChannelConfigCache) store(ctx context.Context, key string, cfg *domain.ChannelConfig) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
