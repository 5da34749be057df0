//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
)

func storeProcessed(t *testing.T, services *TestServices, summary string, processedAt time.Time) {
	t.Helper()
	ctx := context.Background()

	tracked := createTrackedEntity(t, services)

	raw := &content.RawContent{
		ID:          uuid.NewString(),
		EntityID:    tracked.ID,
		ExternalID:  uuid.NewString()[:18],
		ContentType: content.ContentTypeTweet,
		Content:     "Bitcoin hits new high",
		Language:    content.LanguageEnglish,
		PublishedAt: processedAt.Add(-time.Hour),
		CollectedAt: processedAt,
	}
	_, _, err := services.DBContext.RawRepo.Save(ctx, raw)
	require.NoError(t, err)

	processed := &content.ProcessedContent{
		ID:             uuid.NewString(),
		RawContentID:   raw.ID,
		SentimentScore: 0.5,
		ImpactScore:    0.5,
		Categories:     []string{"market"},
		Summary:        summary,
		ProcessedAt:    processedAt,
	}
	require.NoError(t, services.DBContext.ProcessedRepo.Create(ctx, processed))
}

func createTrackedEntity(t *testing.T, services *TestServices) *feed.TrackedEntity {
	t.Helper()
	ctx := context.Background()

	username := "acct_" + uuid.NewString()[:8]
	services.Client.addUser(uuid.NewString()[:12], username)
	tracked, err := services.EntityService.AddAccount(ctx, username)
	require.NoError(t, err)
	return tracked
}

func TestSentimentQueryService_RecentSummaries_Cached(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	storeProcessed(t, services, "Market Intelligence: first", time.Now().UTC())

	summaries, err := services.SentimentQueryService.RecentSummaries(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Market Intelligence: first"}, summaries)

	// A later write is invisible until the cache entry expires
	storeProcessed(t, services, "Market Intelligence: second", time.Now().UTC())

	summaries, err = services.SentimentQueryService.RecentSummaries(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Market Intelligence: first"}, summaries)
}

func TestContentQueryService_List_DefaultsQuery(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	rows, err := services.ContentQueryService.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSentimentQueryService_List_InvalidQuery(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	query := &content.ProcessedContentQuery{MinImpact: 2}
	_, err := services.SentimentQueryService.List(context.Background(), query)
	assert.Error(t, err)
}
