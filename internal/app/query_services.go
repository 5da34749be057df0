package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/infrastructure/cache"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// contentQueryService implements the ContentQueryService interface for the
// read side of collected content
type contentQueryService struct {
	rawRepo content.RawContentRepository
	logger  logger.Logger
}

// NewContentQueryService creates a new instance of ContentQueryService
func NewContentQueryService(rawRepo content.RawContentRepository, logger logger.Logger) (content.ContentQueryService, error) {
	return &contentQueryService{
		rawRepo: rawRepo,
		logger:  logger,
	}, nil
}

// List retrieves raw content considering a query filter when set
func (s *contentQueryService) List(ctx context.Context, query *content.RawContentQuery) ([]*content.RawContent, error) {
	if query == nil {
		query = content.NewRawContentQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return s.rawRepo.List(ctx, query)
}

// GetByID retrieves one raw content row by ID
func (s *contentQueryService) GetByID(ctx context.Context, rawContentID string) (*content.RawContent, error) {
	return s.rawRepo.GetByID(ctx, rawContentID)
}

// sentimentQueryService implements the SentimentQueryService interface,
// serving recent summaries through the cache
type sentimentQueryService struct {
	processedRepo content.ProcessedContentRepository
	cache         cache.Cache
	cacheTTL      time.Duration
	logger        logger.Logger
}

// NewSentimentQueryService creates a new instance of SentimentQueryService
func NewSentimentQueryService(
	processedRepo content.ProcessedContentRepository,
	cacheBackend cache.Cache,
	cacheTTL time.Duration,
	logger logger.Logger,
) (content.SentimentQueryService, error) {
	return &sentimentQueryService{
		processedRepo: processedRepo,
		cache:         cacheBackend,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}, nil
}

// List retrieves processed content considering a query filter when set
func (s *sentimentQueryService) List(ctx context.Context, query *content.ProcessedContentQuery) ([]*content.ProcessedContent, error) {
	if query == nil {
		query = content.NewProcessedContentQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return s.processedRepo.List(ctx, query)
}

// RecentSummaries returns the newest market intelligence summaries, cached
// for the configured TTL. Cache failures fall through to the database.
func (s *sentimentQueryService) RecentSummaries(ctx context.Context, limit int) ([]string, error) {
	key := fmt.Sprintf("summaries:%d", limit)

	if data, found, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Cache read failed for ", key, ": ", err)
	} else if found {
		var summaries []string
		if err := json.Unmarshal(data, &summaries); err == nil {
			return summaries, nil
		}
		s.logger.Warn("Discarding undecodable cache entry ", key)
	}

	summaries, err := s.processedRepo.ListRecentSummaries(ctx, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summaries); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.logger.Warn("Cache write failed for ", key, ": ", err)
		}
	}

	return summaries, nil
}
