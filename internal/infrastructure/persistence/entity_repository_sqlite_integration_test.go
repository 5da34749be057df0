//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
)

func TestSourceRepository_GetOrCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	first, err := tc.SourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "https://x.com/i/api")
	require.NoError(t, err)

	second, err := tc.SourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "https://x.com/i/api")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	fetched, err := tc.SourceRepo.GetByType(ctx, config.TwitterSourceType)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, first.ID, fetched.ID)
}

func TestSourceRepository_GetByType_Missing(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	fetched, err := tc.SourceRepo.GetByType(ctx, "rss")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestEntityRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	source, err := tc.SourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "")
	require.NoError(t, err)

	entity := CreateTestEntity(t, source.ID)
	require.NoError(t, tc.EntityRepo.Create(ctx, entity))

	byExternal, err := tc.EntityRepo.GetByExternalID(ctx, source.ID, entity.ExternalID)
	require.NoError(t, err)
	require.NotNil(t, byExternal)
	assert.Equal(t, entity.ID, byExternal.ID)

	missing, err := tc.EntityRepo.GetByExternalID(ctx, source.ID, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEntityRepository_ListActiveBySource(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	source, err := tc.SourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "")
	require.NoError(t, err)

	active := CreateTestEntity(t, source.ID)
	require.NoError(t, tc.EntityRepo.Create(ctx, active))

	inactive := CreateTestEntity(t, source.ID)
	inactive.Username = "quietaccount"
	require.NoError(t, tc.EntityRepo.Create(ctx, inactive))
	require.NoError(t, tc.EntityRepo.DeactivateByID(ctx, inactive.ID))

	entities, err := tc.EntityRepo.ListActiveBySource(ctx, source.ID)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, active.ID, entities[0].ID)
}

func TestEntityRepository_ListWithFilter(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	source, err := tc.SourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "")
	require.NoError(t, err)

	entity := CreateTestEntity(t, source.ID)
	entity.Username = "coindesk"
	require.NoError(t, tc.EntityRepo.Create(ctx, entity))

	query := feed.NewEntityQuery()
	query.Username = "coin"

	list, err := tc.EntityRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "coindesk", list[0].Username)
}

func TestEntityRepository_DeactivateMissing(t *testing.T) {
	ctx := context.Background()
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.EntityRepo.DeactivateByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorContains(t, err, "not found")
}
