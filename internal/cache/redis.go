package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/vibe-gaming/registration/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	RedisTypeSingle  = "redis"
	RedisTypeCluster = "redisCluster"

	pingTimeout = 1500 * time.Millisecond
	ioTimeout   = time.Second
)

// NewRedis connects to the configured single node or cluster and checks it
// answers a PING. The client is returned even when the ping fails so callers
// can decide whether redis is optional.
func NewRedis(cfg config.Cache) (redis.UniversalClient, error) {
	var client redis.UniversalClient

	switch cfg.Type {
	case RedisTypeSingle:
		client = redis.NewClient(&redis.Options{
			Addr:            cfg.Redis.Address,
			Password:        cfg.Redis.Password,
			PoolSize:        cfg.Redis.PoolSize,
			ConnMaxIdleTime: 170 * time.Second,
			DialTimeout:     ioTimeout,
			ReadTimeout:     ioTimeout,
			WriteTimeout:    ioTimeout,
		})
	case RedisTypeCluster:
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           cfg.RedisCluster.Addresses,
			Password:        cfg.RedisCluster.Password,
			PoolSize:        cfg.RedisCluster.PoolSize,
			ConnMaxLifetime: 15 * time.Minute,
			DialTimeout:     ioTimeout,
			ReadTimeout:     ioTimeout,
			WriteTimeout:    ioTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown redis type %q", cfg.Type)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return client, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Ping adapts a redis client to a health probe.
func Ping(client redis.UniversalClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
