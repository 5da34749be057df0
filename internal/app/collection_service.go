package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
	"github.com/xLang1234/PythonBE/internal/observability"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// collectionService implements the CollectionService interface for the
// collect side of the pipeline
type collectionService struct {
	sourceRepo feed.SourceRepository
	entityRepo feed.EntityRepository
	rawRepo    content.RawContentRepository
	client     SocialClient
	settings   *config.TwitterSettings
	logger     logger.Logger
	now        func() time.Time

	// running prevents overlapping collection passes
	running sync.Mutex

	// resumeAfter holds the backoff deadline set when a pass hits the
	// platform rate limit; guarded by running
	resumeAfter time.Time
}

// NewCollectionService creates a new instance of CollectionService
func NewCollectionService(
	sourceRepo feed.SourceRepository,
	entityRepo feed.EntityRepository,
	rawRepo content.RawContentRepository,
	client SocialClient,
	settings *config.TwitterSettings,
	logger logger.Logger,
) (feed.CollectionService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &collectionService{
		sourceRepo: sourceRepo,
		entityRepo: entityRepo,
		rawRepo:    rawRepo,
		client:     client,
		settings:   settings,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// CollectAll fetches recent posts for every active tracked entity and stores
// the ones inside the lookback window. Per-entity failures are logged and
// skipped. When a pass is already running, or the platform rate limit put
// collection on cooldown, the call returns immediately.
func (s *collectionService) CollectAll(ctx context.Context) (int, error) {
	if !s.running.TryLock() {
		s.logger.Warn("Collection pass already running, skipping")
		return 0, nil
	}
	defer s.running.Unlock()

	if wait := s.resumeAfter.Sub(s.now()); wait > 0 {
		s.logger.Warn("Rate limit cooldown active, next collection in ", wait.Round(time.Second))
		return 0, nil
	}

	source, err := s.sourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "https://x.com")
	if err != nil {
		return 0, fmt.Errorf("failed to resolve source: %w", err)
	}

	entities, err := s.entityRepo.ListActiveBySource(ctx, source.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list active entities: %w", err)
	}
	s.logger.Info("Found ", len(entities), " active entities to collect")

	totalStored := 0
	for _, entity := range entities {
		stored, err := s.collectEntity(ctx, entity)
		if err != nil {
			observability.CollectionErrors.Inc()
			s.logger.Error("Failed to collect posts for ", entity.Username, ": ", err)
			if errors.Is(err, twitterx.ErrRateLimited) {
				// The client already switched sessions; stop the pass and
				// back off for the configured cooldown
				cooldown := time.Duration(s.settings.RateLimitCooldownSecond) * time.Second
				s.resumeAfter = s.now().Add(cooldown)
				s.logger.Warn("Rate limited, pausing collection for ", cooldown)
				break
			}
			continue
		}
		totalStored += stored
	}

	observability.ContentCollected.WithLabelValues(config.TwitterSourceType).Add(float64(totalStored))
	s.logger.Info("Collection completed, stored ", totalStored, " new posts")
	return totalStored, nil
}

// collectEntity stores the recent posts of one entity, skipping posts
// outside the lookback window and posts already stored.
func (s *collectionService) collectEntity(ctx context.Context, entity *feed.TrackedEntity) (int, error) {
	tweets, err := s.client.UserTweets(ctx, entity.ExternalID, s.settings.MaxTweetsPerCollection)
	if err != nil {
		return 0, err
	}
	if len(tweets) == 0 {
		s.logger.Info("No new posts found for ", entity.Username)
		return 0, nil
	}

	cutoff := time.Now().UTC().Add(-time.Duration(s.settings.LookbackDays) * 24 * time.Hour)

	stored := 0
	for _, tweet := range tweets {
		if tweet.CreatedAt.Before(cutoff) {
			continue
		}

		raw := &content.RawContent{
			ID:          uuid.NewString(),
			EntityID:    entity.ID,
			ExternalID:  tweet.ID,
			ContentType: content.ContentTypeTweet,
			Content:     tweet.Text,
			Language:    tweet.Language,
			PublishedAt: tweet.CreatedAt,
			CollectedAt: time.Now().UTC(),
			Engagement: content.EngagementMetrics{
				Likes:    tweet.LikeCount,
				Retweets: tweet.RetweetCount,
				Replies:  tweet.ReplyCount,
				Quotes:   tweet.QuoteCount,
			},
			RawData: tweet.Raw,
		}
		if err := raw.Validate(); err != nil {
			s.logger.Error("Skipping invalid post ", tweet.ID, ": ", err)
			continue
		}

		_, created, err := s.rawRepo.Save(ctx, raw)
		if err != nil {
			s.logger.Error("Failed to save post ", tweet.ID, ": ", err)
			continue
		}
		if created {
			stored++
		}
	}

	s.logger.Info("Stored ", stored, " new posts for ", entity.Username)
	return stored, nil
}
