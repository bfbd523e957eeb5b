package cache

import (
	"context"
	"fmt"

	"golden9_club/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// Connect creates a Redis client and verifies the connection.
// The caller owns the returned client and closes it at shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}
