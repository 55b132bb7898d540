package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"whatoGift/pkg/config"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
)

func options(cfg *config.Config) *redis.Options {
	rc := cfg.Redis
	return &redis.Options{
		Addr:         net.JoinHostPort(rc.RedisHost, rc.RedisPort),
		Password:     rc.RedisPassword,
		DB:           rc.RedisDB,
		PoolSize:     rc.PoolSize,
		MinIdleConns: rc.MinIdleConns,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	}
}

// NewRedisClient connects to the snapshot cache and pings it once.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(options(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", client.Options().Addr, err)
	}

	return client, nil
}

// CloseRedisClient closes the Redis connection
func CloseRedisClient(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}

	return nil
}
