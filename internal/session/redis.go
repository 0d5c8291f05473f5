package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
)

// Connect opens a Redis client for the session store and checks the connection.
func Connect(ctx context.Context, cfg config.RedisConnection) (*redis.Client, error) {
	const op = "session.Connect"
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		Username:     cfg.RedisUser,
		MaxRetries:   cfg.RedisMaxRetries,
		DialTimeout:  cfg.RedisDialTimeout,
		ReadTimeout:  cfg.RedisTimeout,
		WriteTimeout: cfg.RedisTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rdb, nil
}
