package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCache is an in-process cache for single-instance deployments
type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache
func NewMemoryCache() Cache {
	return &memoryCache{
		store: gocache.New(gocache.NoExpiration, 5*time.Minute),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := c.store.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}
