//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/testutil"
)

func TestNewCache_Memory(t *testing.T) {
	settings := &config.CacheSettings{Type: config.MemoryCacheType, TTLSeconds: 60}

	c, err := NewCache(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewCache_RedisRequiresAddr(t *testing.T) {
	settings := &config.CacheSettings{Type: config.RedisCacheType, TTLSeconds: 60}

	_, err := NewCache(settings, testutil.SetupTestLogger(t))
	assert.ErrorContains(t, err, "redis_addr is required")
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	data, found, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("value"), data)

	require.NoError(t, c.Delete(ctx, "key"))
	_, found, err = c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewRedisCache(srv.Addr(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

	data, found, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("value"), data)

	require.NoError(t, c.Delete(ctx, "key"))
	_, found, err = c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_TTLExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewRedisCache(srv.Addr(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Second))
	srv.FastForward(2 * time.Second)

	_, found, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache("127.0.0.1:1", testutil.SetupTestLogger(t))
	assert.ErrorContains(t, err, "failed to connect to redis")
}
