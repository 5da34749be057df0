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

	"github.com/xLang1234/PythonBE/internal/domain/sentiment"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
)

func TestAnalysisService_ProcessUnprocessed(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("t1", "Bitcoin hits new high", time.Hour),
	)
	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	_, err = services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)

	processed, err := services.AnalysisService.ProcessUnprocessed(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	results, err := services.SentimentQueryService.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.5, results[0].SentimentScore, 1e-9)
	assert.Equal(t, []string{"market"}, results[0].Categories)
	assert.Contains(t, results[0].Summary, "[Source](https://twitter.com/coindesk/status/t1)")

	// A second pass finds nothing left to process
	processed, err = services.AnalysisService.ProcessUnprocessed(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
}

func TestAnalysisService_SkipsOverlappingPass(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("t1", "Bitcoin hits new high", time.Hour),
	)
	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	_, err = services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)

	services.Analyzer.entered = make(chan struct{})
	services.Analyzer.release = make(chan struct{})

	firstDone := make(chan struct{})
	var firstProcessed int
	var firstErr error
	go func() {
		defer close(firstDone)
		firstProcessed, firstErr = services.AnalysisService.ProcessUnprocessed(ctx, 100)
	}()

	// Wait until the first pass is inside the analyzer
	<-services.Analyzer.entered

	// A second pass started mid-flight returns without touching the same rows
	processed, err := services.AnalysisService.ProcessUnprocessed(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)

	close(services.Analyzer.release)
	<-firstDone
	require.NoError(t, firstErr)
	assert.Equal(t, 1, firstProcessed)

	results, err := services.SentimentQueryService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestAnalysisService_SkipsNonCrypto(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("t1", "Our office dog made a new friend", time.Hour),
	)
	services.Analyzer.verdicts["Our office dog made a new friend"] = &sentiment.Analysis{
		Categories:      []string{"general"},
		IsCryptoRelated: false,
	}

	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	_, err = services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)

	processed, err := services.AnalysisService.ProcessUnprocessed(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)

	results, err := services.SentimentQueryService.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnalysisService_SummarizerFailureTolerated(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("t1", "Bitcoin hits new high", time.Hour),
	)
	services.Summarizer.err = fmt.Errorf("model unavailable")

	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	_, err = services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)

	processed, err := services.AnalysisService.ProcessUnprocessed(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	results, err := services.SentimentQueryService.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Summary)
}

func TestAnalysisService_RespectsLimit(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Client.addUser("1001", "coindesk",
		testTweet("t1", "Bitcoin hits new high", time.Hour),
		testTweet("t2", "Ethereum upgrade shipped", 2*time.Hour),
		testTweet("t3", "Solana outage resolved", 3*time.Hour),
	)
	_, err := services.EntityService.AddAccount(ctx, "coindesk")
	require.NoError(t, err)
	_, err = services.CollectionService.CollectAll(ctx)
	require.NoError(t, err)

	processed, err := services.AnalysisService.ProcessUnprocessed(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	processed, err = services.AnalysisService.ProcessUnprocessed(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}
