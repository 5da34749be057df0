//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/domain/sentiment"
	"github.com/xLang1234/PythonBE/internal/infrastructure/cache"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence"
	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/testutil"
)

// fakeSocialClient serves canned profiles and timelines so the services can
// be exercised without a live platform.
type fakeSocialClient struct {
	profiles  map[string]*twitterx.UserProfile
	timelines map[string][]*twitterx.Tweet
	errByUser map[string]error
}

func newFakeSocialClient() *fakeSocialClient {
	return &fakeSocialClient{
		profiles:  make(map[string]*twitterx.UserProfile),
		timelines: make(map[string][]*twitterx.Tweet),
		errByUser: make(map[string]error),
	}
}

func (f *fakeSocialClient) addUser(userID, username string, tweets ...*twitterx.Tweet) {
	f.profiles[username] = &twitterx.UserProfile{
		ID:             userID,
		Name:           username,
		Username:       username,
		FollowersCount: 1000,
	}
	f.timelines[userID] = tweets
}

func (f *fakeSocialClient) UserByScreenName(_ context.Context, username string) (*twitterx.UserProfile, error) {
	profile, ok := f.profiles[username]
	if !ok {
		return nil, fmt.Errorf("user %s not found", username)
	}
	return profile, nil
}

func (f *fakeSocialClient) UserTweets(_ context.Context, userID string, limit int) ([]*twitterx.Tweet, error) {
	if err, ok := f.errByUser[userID]; ok {
		return nil, err
	}
	tweets := f.timelines[userID]
	if len(tweets) > limit {
		tweets = tweets[:limit]
	}
	return tweets, nil
}

// fakeAnalyzer returns a fixed verdict per text, falling back to a bullish
// default. When entered/release are set, Analyze signals on entered and then
// blocks until release closes, so tests can hold a pass mid-flight.
type fakeAnalyzer struct {
	verdicts map[string]*sentiment.Analysis
	entered  chan struct{}
	release  chan struct{}
}

func newFakeAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{verdicts: make(map[string]*sentiment.Analysis)}
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (*sentiment.Analysis, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if verdict, ok := f.verdicts[text]; ok {
		return verdict, nil
	}
	return &sentiment.Analysis{
		SentimentScore:    0.5,
		ImpactScore:       0.5,
		Categories:        []string{"market"},
		Keywords:          []string{"crypto"},
		EntitiesMentioned: []string{"bitcoin"},
		IsCryptoRelated:   true,
	}, nil
}

// fakeSummarizer echoes the source link so tests can assert on it
type fakeSummarizer struct {
	err error
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ string, _ *sentiment.Analysis, sourceURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	summary := "Market Intelligence: test summary"
	if sourceURL != "" {
		summary = fmt.Sprintf("%s [Source](%s)", summary, sourceURL)
	}
	return summary, nil
}

func testTwitterSettings(t *testing.T) *config.TwitterSettings {
	t.Helper()
	return &config.TwitterSettings{
		BaseURL:                "https://x.test",
		CookiesDir:             t.TempDir(),
		MaxTweetsPerCollection: 100,
		LookbackDays:           1,
	}
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	EntityService         feed.EntityService
	CollectionService     feed.CollectionService
	AnalysisService       content.AnalysisService
	ContentQueryService   content.ContentQueryService
	SentimentQueryService content.SentimentQueryService

	Client     *fakeSocialClient
	Analyzer   *fakeAnalyzer
	Summarizer *fakeSummarizer
	DBContext  *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	client := newFakeSocialClient()
	analyzer := newFakeAnalyzer()
	summarizer := &fakeSummarizer{}

	entityService, err := NewEntityService(dbContext.SourceRepo, dbContext.EntityRepo, client, log)
	require.NoError(t, err, "Failed to create EntityService")

	collectionService, err := NewCollectionService(
		dbContext.SourceRepo,
		dbContext.EntityRepo,
		dbContext.RawRepo,
		client,
		testTwitterSettings(t),
		log,
	)
	require.NoError(t, err, "Failed to create CollectionService")

	analysisService, err := NewAnalysisService(
		dbContext.RawRepo,
		dbContext.ProcessedRepo,
		dbContext.EntityRepo,
		analyzer,
		summarizer,
		log,
	)
	require.NoError(t, err, "Failed to create AnalysisService")

	contentQueryService, err := NewContentQueryService(dbContext.RawRepo, log)
	require.NoError(t, err, "Failed to create ContentQueryService")

	sentimentQueryService, err := NewSentimentQueryService(
		dbContext.ProcessedRepo,
		cache.NewMemoryCache(),
		time.Minute,
		log,
	)
	require.NoError(t, err, "Failed to create SentimentQueryService")

	return &TestServices{
		EntityService:         entityService,
		CollectionService:     collectionService,
		AnalysisService:       analysisService,
		ContentQueryService:   contentQueryService,
		SentimentQueryService: sentimentQueryService,
		Client:                client,
		Analyzer:              analyzer,
		Summarizer:            summarizer,
		DBContext:             dbContext,
	}
}
