package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/models"
)

const (
	listKey       = "shoecard:shoes"
	shoeKeyPrefix = "shoecard:shoe:"
)

// Cached puts a redis read-through cache in front of another store. Only
// shoe data is cached; cards are still classified on every request.
type Cached struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached connects to redisURL and pings it before returning
func NewCached(ctx context.Context, inner Store, redisURL string, ttl time.Duration, logger *zap.Logger) (*Cached, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}

	return &Cached{inner: inner, client: client, ttl: ttl, logger: logger}, nil
}

// Close closes the redis connection
func (c *Cached) Close() error {
	return c.client.Close()
}

// List serves the listing from redis when present
func (c *Cached) List(ctx context.Context) ([]models.Shoe, error) {
	var shoes []models.Shoe
	if c.lookup(ctx, listKey, &shoes) {
		return shoes, nil
	}

	shoes, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, listKey, shoes)
	return shoes, nil
}

// Get serves a single shoe from redis when present. Misses are not cached.
func (c *Cached) Get(ctx context.Context, slug string) (models.Shoe, error) {
	var shoe models.Shoe
	if c.lookup(ctx, shoeKeyPrefix+slug, &shoe) {
		return shoe, nil
	}

	shoe, err := c.inner.Get(ctx, slug)
	if err != nil {
		return models.Shoe{}, err
	}
	c.store(ctx, shoeKeyPrefix+slug, shoe)
	return shoe, nil
}

// Upsert writes through and drops the affected keys
func (c *Cached) Upsert(ctx context.Context, shoe models.Shoe) error {
	if err := c.inner.Upsert(ctx, shoe); err != nil {
		return err
	}
	if err := c.client.Del(ctx, listKey, shoeKeyPrefix+shoe.Slug).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cache", zap.String("slug", shoe.Slug), zap.Error(err))
	}
	return nil
}

// lookup fills dst from key. Redis failures are logged and treated as a miss.
func (c *Cached) lookup(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *Cached) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
