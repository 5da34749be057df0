// Package cache provides the read-side cache used by the REST API, backed
// by an in-process store or Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// Cache stores serialized query results under string keys with a TTL
type Cache interface {
	// Get returns the cached value for key and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key from the cache
	Delete(ctx context.Context, key string) error
}

// NewCache creates the cache backend selected by settings
func NewCache(settings *config.CacheSettings, log logger.Logger) (Cache, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch settings.Type {
	case config.MemoryCacheType:
		return NewMemoryCache(), nil
	case config.RedisCacheType:
		return NewRedisCache(settings.RedisAddr, log)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}
