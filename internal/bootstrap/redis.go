package bootstrap

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/estatenexus/estate-backend/config"
)

// OpenRedis connects the summary cache. Redis is optional: no address,
// or a failed ping, yields nil and the cache becomes a no-op.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable, summary cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}
