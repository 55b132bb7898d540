package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	PoolSize      int
	MinIdleConns  int
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.RedisHost != ""
}

type CatalogConfig struct {
	// SnapshotCacheTTL of zero disables the snapshot cache.
	SnapshotCacheTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	redisPoolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10"))
	if err != nil || redisPoolSize <= 0 {
		return nil, errors.New("invalid redis pool size")
	}

	redisMinIdle, err := strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2"))
	if err != nil || redisMinIdle < 0 || redisMinIdle > redisPoolSize {
		return nil, errors.New("invalid redis min idle conns")
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog cache ttl: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "WhatoGift API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "3001"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "whatogift"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", ""),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			PoolSize:      redisPoolSize,
			MinIdleConns:  redisMinIdle,
		},
		Catalog: CatalogConfig{
			SnapshotCacheTTL: cacheTTL,
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Catalog.SnapshotCacheTTL < 0 {
		return nil, errors.New("catalog cache ttl cannot be negative")
	}

	if cfg.Catalog.SnapshotCacheTTL > 0 && !cfg.Redis.Enabled() {
		return nil, errors.New("catalog cache ttl set but redis host is missing")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
