package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence/models"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

type gormProcessedContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProcessedContentRepository creates a new GORM-based ProcessedContentRepository implementation
func NewGormProcessedContentRepository(db *gorm.DB, logger logger.Logger) (content.ProcessedContentRepository, error) {
	return &gormProcessedContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProcessedContentRepository) Create(ctx context.Context, processed *content.ProcessedContent) error {
	if err := processed.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProcessedContentModel{}
	model.FromDomain(processed)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create processed content: %w", err)
	}

	r.logger.Info("Created processed content for raw content ", processed.RawContentID)
	return nil
}

func (r *gormProcessedContentRepository) List(ctx context.Context, query *content.ProcessedContentQuery) ([]*content.ProcessedContent, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProcessedContentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProcessedContentModel{})

	// Apply filters
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("processed_at >= ?", query.Since)
	}
	if query.Category != "" {
		// Categories are stored as a JSON array of strings
		dbQuery = dbQuery.Where("categories LIKE ?", fmt.Sprintf("%%%q%%", query.Category))
	}
	if query.MinImpact > 0 {
		dbQuery = dbQuery.Where("impact_score >= ?", query.MinImpact)
	}

	dbQuery = dbQuery.Order("processed_at desc")

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch processed content: %w", err)
	}

	domainList := make([]*content.ProcessedContent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProcessedContentRepository) ListRecentSummaries(ctx context.Context, limit int) ([]string, error) {
	var summaries []string
	err := r.db.WithContext(ctx).
		Model(&models.ProcessedContentModel{}).
		Where("summary <> ''").
		Order("processed_at desc").
		Limit(limit).
		Pluck("summary", &summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summaries: %w", err)
	}
	return summaries, nil
}
