package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibe-gaming/registration/internal/config"
)

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	var cfg config.Cache
	cfg.Type = RedisTypeSingle
	cfg.Redis.Address = mr.Addr()
	cfg.Redis.PoolSize = 5

	client, err := NewRedis(cfg)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, Ping(client)(context.Background()))

	mr.Close()
	assert.Error(t, Ping(client)(context.Background()))
}

func TestNewRedis_Password(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	var cfg config.Cache
	cfg.Type = RedisTypeSingle
	cfg.Redis.Address = mr.Addr()
	cfg.Redis.PoolSize = 5

	_, err := NewRedis(cfg)
	assert.Error(t, err)

	cfg.Redis.Password = "secret"
	client, err := NewRedis(cfg)
	require.NoError(t, err)
	defer client.Close()
}

func TestNewRedis_WrongType(t *testing.T) {
	_, err := NewRedis(config.Cache{Type: "memcached"})
	assert.Error(t, err)
}
