package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "whatogift", cfg.Database.Name)
	assert.False(t, cfg.Redis.Enabled())
	assert.Zero(t, cfg.Catalog.SnapshotCacheTTL)
}

func TestLoadMissingDatabasePassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.EqualError(t, err, "missing database password")
}

func TestLoadCacheRequiresRedis(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("REDIS_HOST", "")

	_, err := Load()
	assert.EqualError(t, err, "catalog cache ttl set but redis host is missing")
}

func TestLoadCacheWithRedis(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Catalog.SnapshotCacheTTL)
	assert.Equal(t, 2, cfg.Redis.RedisDB)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoadInvalidRequestTimeout(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRedisPool(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 2, cfg.Redis.MinIdleConns)

	t.Setenv("REDIS_POOL_SIZE", "20")
	t.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Redis.PoolSize)
	assert.Equal(t, 5, cfg.Redis.MinIdleConns)
}

func TestLoadInvalidRedisPool(t *testing.T) {
	tests := []struct {
		name     string
		poolSize string
		minIdle  string
		wantErr  string
	}{
		{"zero pool", "0", "0", "invalid redis pool size"},
		{"not a number", "many", "2", "invalid redis pool size"},
		{"idle above pool", "4", "8", "invalid redis min idle conns"},
		{"negative idle", "4", "-1", "invalid redis min idle conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_PASSWORD", "secret")
			t.Setenv("REDIS_POOL_SIZE", tt.poolSize)
			t.Setenv("REDIS_MIN_IDLE_CONNS", tt.minIdle)

			_, err := Load()
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
