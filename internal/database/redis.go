package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"social-media-backend/config"
	"social-media-backend/pkg/logger"
)

// NewRedisClient creates the redis client backing rate limiting.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis", map[string]interface{}{"addr": cfg.RedisAddr})
	return client, nil
}
