package insights

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	cacheKeyPrefix = "insights:" // insights:{kind}:{id}
	defaultTTL     = 15 * time.Minute
)

// Cache keeps recent summary texts in Redis so flipping between
// selections does not re-bill the generation API. A nil Cache (or a
// Redis that is down) behaves as a permanent miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(kind, id string) string {
	return cacheKeyPrefix + kind + ":" + id
}

func (c *Cache) Get(ctx context.Context, kind, id string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	text, err := c.client.Get(ctx, c.key(kind, id)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logrus.WithError(err).Warn("insights cache read failed")
		return "", false
	}
	return text, true
}

func (c *Cache) Set(ctx context.Context, kind, id, text string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, c.key(kind, id), text, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("insights cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, kind, id string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(kind, id)).Err(); err != nil {
		logrus.WithError(err).Warn("insights cache invalidate failed")
	}
}
