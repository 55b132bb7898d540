package redis

import (
	"testing"

	"whatoGift/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{
		RedisHost:     "cache.internal",
		RedisPort:     "6380",
		RedisPassword: "secret",
		RedisDB:       3,
		PoolSize:      25,
		MinIdleConns:  4,
	}}

	opts := options(cfg)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 25, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
	assert.Equal(t, dialTimeout, opts.DialTimeout)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{
		RedisHost: "127.0.0.1",
		RedisPort: "1",
		PoolSize:  1,
	}}

	client, err := NewRedisClient(cfg)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestCloseRedisClientNil(t *testing.T) {
	assert.NoError(t, CloseRedisClient(nil))
}
