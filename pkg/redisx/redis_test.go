package redisx

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRedisStandalone(t *testing.T) {
	s := miniredis.RunT(t)
	ctx := context.Background()

	client, closeFn, err := NewRedis(ctx, RedisConfig{Address: s.Addr()})
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
	got, err := s.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", got)
}

func TestNewRedisEmbedded(t *testing.T) {
	ctx := context.Background()
	client, closeFn, err := NewRedis(ctx, RedisConfig{RedisType: "miniredis"})
	require.NoError(t, err)
	defer closeFn()
	require.NoError(t, client.Ping(ctx).Err())
}

func TestNewRedisIllegalType(t *testing.T) {
	_, _, err := NewRedis(context.Background(), RedisConfig{RedisType: "memcached"})
	require.Error(t, err)
}
