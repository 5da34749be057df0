//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
)

func TestEntityService_AddAccount(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk")

	entity, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	assert.Equal(t, "1001", entity.ExternalID)
	assert.Equal(t, "coindesk", entity.Username)
	assert.True(t, entity.IsActive)
	assert.Equal(t, 1.0, entity.RelevanceScore)
}

func TestEntityService_AddAccount_Idempotent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk")

	first, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)

	second, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	entities, err := services.EntityService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, entities, 1)
}

func TestEntityService_AddAccount_UnknownUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.EntityService.AddAccount(context.Background(), "ghost")
	assert.ErrorContains(t, err, "failed to look up user")
}

func TestEntityService_SeedDefaultAccounts(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	// Only three of the defaults resolve; the rest are logged and skipped
	services.Client.addUser("2001", "coinbase")
	services.Client.addUser("2002", "binance")
	services.Client.addUser("2003", "CoinDesk")

	added, err := services.EntityService.SeedDefaultAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	// Seeding again adds nothing new
	added, err = services.EntityService.SeedDefaultAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestEntityService_Deactivate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk")
	entity, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)

	require.NoError(t, services.EntityService.Deactivate(ctx, entity.ID))

	query := feed.NewEntityQuery()
	query.ActiveOnly = true
	entities, err := services.EntityService.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestEntityService_List_InvalidQuery(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	query := &feed.EntityQuery{Limit: 1000}
	_, err := services.EntityService.List(context.Background(), query)
	assert.Error(t, err)
}
