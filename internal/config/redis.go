package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis for the provider response cache.
// Returns nil when Redis is unreachable; callers treat a nil client as
// cache-disabled.
func NewRedisClient() *redis.Client {
	addr := GetEnv("REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvAsInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis not available at %s, provider cache disabled: %v", addr, err)
		return nil
	}

	logrus.Infof("Redis connected at %s", addr)
	return client
}
