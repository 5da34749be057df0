//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	SourceRepo    feed.SourceRepository
	EntityRepo    feed.EntityRepository
	RawRepo       content.RawContentRepository
	ProcessedRepo content.ProcessedContentRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	sourceRepo, err := NewGormSourceRepository(db, log)
	require.NoError(t, err, "Failed to create source repository")

	entityRepo, err := NewGormEntityRepository(db, log)
	require.NoError(t, err, "Failed to create entity repository")

	rawRepo, err := NewGormRawContentRepository(db, log)
	require.NoError(t, err, "Failed to create raw content repository")

	processedRepo, err := NewGormProcessedContentRepository(db, log)
	require.NoError(t, err, "Failed to create processed content repository")

	return &TestContext{
		DB:            db,
		SourceRepo:    sourceRepo,
		EntityRepo:    entityRepo,
		RawRepo:       rawRepo,
		ProcessedRepo: processedRepo,
	}
}

// CreateTestEntity creates a tracked entity with default values
func CreateTestEntity(t *testing.T, sourceID string) *feed.TrackedEntity {
	t.Helper()

	now := time.Now().UTC()
	return &feed.TrackedEntity{
		ID:             uuid.NewString(),
		SourceID:       sourceID,
		ExternalID:     uuid.NewString()[:18],
		Name:           "Test Account",
		Username:       "testaccount",
		Description:    "crypto news test account",
		FollowersCount: 1000,
		RelevanceScore: 1.0,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CreateTestRawContent creates a raw content row attached to an entity
func CreateTestRawContent(t *testing.T, entityID, externalID string) *content.RawContent {
	t.Helper()

	now := time.Now().UTC()
	return &content.RawContent{
		ID:          uuid.NewString(),
		EntityID:    entityID,
		ExternalID:  externalID,
		ContentType: content.ContentTypeTweet,
		Content:     "Bitcoin hits a new all-time high",
		Language:    content.LanguageEnglish,
		PublishedAt: now.Add(-time.Hour),
		CollectedAt: now,
		Engagement: content.EngagementMetrics{
			Likes:    10,
			Retweets: 2,
		},
	}
}
