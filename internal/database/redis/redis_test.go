package redis

import (
	"context"
	"testing"

	"piercing-service/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(mr *miniredis.Miniredis) config.RedisConfig {
	return config.RedisConfig{Host: mr.Host(), Port: mr.Port()}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(redisConfig(mr))
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.GetClient().Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfig(mr)
	mr.Close()

	_, err := NewRedisClient(cfg)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestPing_ReflectsLiveServer(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(redisConfig(mr))
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}
