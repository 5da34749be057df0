//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/testutil"
)

func testTweet(id, text string, age time.Duration) *twitterx.Tweet {
	return &twitterx.Tweet{
		ID:        id,
		Text:      text,
		Language:  content.LanguageEnglish,
		CreatedAt: time.Now().UTC().Add(-age),
		LikeCount: 10,
	}
}

func TestCollectionService_CollectAll(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("t1", "Bitcoin hits new high", time.Hour),
		testTweet("t2", "Ethereum upgrade shipped", 2*time.Hour),
	)
	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)

	stored, err := services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	rows, err := services.ContentQueryService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCollectionService_CollectAll_Deduplicates(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk", testTweet("t1", "Bitcoin hits new high", time.Hour))
	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)

	stored, err := services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	// A second pass sees the same tweet and stores nothing
	stored, err = services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stored)
}

func TestCollectionService_CollectAll_LookbackWindow(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("fresh", "Bitcoin hits new high", time.Hour),
		testTweet("stale", "Old market recap", 48*time.Hour),
	)
	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)

	stored, err := services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	rows, err := services.ContentQueryService.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "fresh", rows[0].ExternalID)
}

func TestCollectionService_CollectAll_EntityFailureContinues(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "broken")
	services.Client.addUser("1002", "working", testTweet("t1", "Bitcoin hits new high", time.Hour))
	services.Client.errByUser["1001"] = fmt.Errorf("boom")

	_, err := services.EntityService.AddAccount(ctx, "broken")
	require.NoError(t, err)
	_, err = services.EntityService.AddAccount(ctx, "working")
	require.NoError(t, err)

	stored, err := services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestCollectionService_CollectAll_RateLimitStopsPass(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "limited")
	services.Client.errByUser["1001"] = twitterx.ErrRateLimited

	_, err := services.EntityService.AddAccount(ctx, "limited")
	require.NoError(t, err)

	stored, err := services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stored)
}

func TestCollectionService_CollectAll_RateLimitCooldown(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "limited", testTweet("t1", "Bitcoin hits new high", time.Hour))
	services.Client.errByUser["1001"] = twitterx.ErrRateLimited

	_, err := services.EntityService.AddAccount(ctx, "limited")
	require.NoError(t, err)

	settings := testTwitterSettings(t)
	settings.RateLimitCooldownSecond = 900

	svc, err := NewCollectionService(
		services.DBContext.SourceRepo,
		services.DBContext.EntityRepo,
		services.DBContext.RawRepo,
		services.Client,
		settings,
		testutil.SetupTestLogger(t),
	)
	require.NoError(t, err)

	collector := svc.(*collectionService)
	current := time.Now().UTC()
	collector.now = func() time.Time { return current }

	stored, err := collector.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stored)

	// The rate limit is gone, but the cooldown has not elapsed
	delete(services.Client.errByUser, "1001")
	stored, err = collector.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stored)

	// After the cooldown the pass runs again and collects
	current = current.Add(16 * time.Minute)
	stored, err = collector.CollectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestCollectionService_CollectAll_NoEntities(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	stored, err := services.CollectionService.CollectAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stored)
}
