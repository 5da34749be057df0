package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/domain/sentiment"
	"github.com/xLang1234/PythonBE/internal/observability"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// analysisService implements the AnalysisService interface for the
// processing side of the pipeline
type analysisService struct {
	rawRepo       content.RawContentRepository
	processedRepo content.ProcessedContentRepository
	entityRepo    feed.EntityRepository
	analyzer      sentiment.Analyzer
	summarizer    sentiment.Summarizer
	logger        logger.Logger

	// running prevents overlapping processing passes
	running sync.Mutex
}

// NewAnalysisService creates a new instance of AnalysisService
func NewAnalysisService(
	rawRepo content.RawContentRepository,
	processedRepo content.ProcessedContentRepository,
	entityRepo feed.EntityRepository,
	analyzer sentiment.Analyzer,
	summarizer sentiment.Summarizer,
	logger logger.Logger,
) (content.AnalysisService, error) {
	return &analysisService{
		rawRepo:       rawRepo,
		processedRepo: processedRepo,
		entityRepo:    entityRepo,
		analyzer:      analyzer,
		summarizer:    summarizer,
		logger:        logger,
	}, nil
}

// ProcessUnprocessed analyzes collected content that has no sentiment row
// yet. Content the ensemble votes not crypto-related is skipped without a
// stored row. When a pass is already running the call returns immediately.
func (s *analysisService) ProcessUnprocessed(ctx context.Context, limit int) (int, error) {
	if !s.running.TryLock() {
		s.logger.Warn("Processing pass already running, skipping")
		return 0, nil
	}
	defer s.running.Unlock()

	unprocessed, err := s.rawRepo.ListUnprocessed(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list unprocessed content: %w", err)
	}
	s.logger.Info("Found ", len(unprocessed), " unprocessed content items")

	processed := 0
	for _, raw := range unprocessed {
		if err := s.processOne(ctx, raw); err != nil {
			observability.ProcessingErrors.Inc()
			s.logger.Error("Failed to process content ", raw.ID, ": ", err)
			continue
		}
		processed++
	}

	s.logger.Info("Processed ", processed, " content items")
	return processed, nil
}

func (s *analysisService) processOne(ctx context.Context, raw *content.RawContent) error {
	analysis, err := s.analyzer.Analyze(ctx, raw.Content)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if !analysis.IsCryptoRelated {
		observability.NonCryptoSkipped.Inc()
		s.logger.Info("Skipping non-crypto content ", raw.ID)
		return nil
	}

	sourceURL := s.sourceURL(ctx, raw)

	summary, err := s.summarizer.Summarize(ctx, raw.Content, analysis, sourceURL)
	if err != nil {
		// A missing summary is not worth losing the analysis over
		s.logger.Error("Failed to generate summary for ", raw.ID, ": ", err)
		summary = ""
	}

	result := &content.ProcessedContent{
		ID:                uuid.NewString(),
		RawContentID:      raw.ID,
		SentimentScore:    analysis.SentimentScore,
		ImpactScore:       analysis.ImpactScore,
		Categories:        analysis.Categories,
		Keywords:          analysis.Keywords,
		EntitiesMentioned: analysis.EntitiesMentioned,
		Summary:           summary,
		ProcessedAt:       time.Now().UTC(),
	}
	if err := result.Validate(); err != nil {
		return err
	}

	if err := s.processedRepo.Create(ctx, result); err != nil {
		return fmt.Errorf("failed to store analysis: %w", err)
	}

	observability.ContentProcessed.Inc()
	s.logger.Info("Processed content ", raw.ID, " with source link: ", sourceURL)
	return nil
}

// sourceURL builds the public link for a post, empty when the author is unknown
func (s *analysisService) sourceURL(ctx context.Context, raw *content.RawContent) string {
	entity, err := s.entityRepo.GetByID(ctx, raw.EntityID)
	if err != nil || entity == nil || entity.Username == "" {
		return ""
	}
	return fmt.Sprintf("https://twitter.com/%s/status/%s", entity.Username, raw.ExternalID)
}
