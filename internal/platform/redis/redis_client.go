// Package redis constructs the shared Redis client from environment settings.
package redis

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient dials the Redis instance configured through REDIS_HOST,
// REDIS_PORT and REDIS_PASSWORD and verifies the connection with a ping.
// Callers treat a returned error as "run without caching".
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("redis ping failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("redis connected", "address", addr)
	return rdb, nil
}
