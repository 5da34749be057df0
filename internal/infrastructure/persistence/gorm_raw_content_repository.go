package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence/models"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

type gormRawContentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRawContentRepository creates a new GORM-based RawContentRepository implementation
func NewGormRawContentRepository(db *gorm.DB, logger logger.Logger) (content.RawContentRepository, error) {
	return &gormRawContentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRawContentRepository) Save(ctx context.Context, raw *content.RawContent) (string, bool, error) {
	if err := raw.Validate(); err != nil {
		return "", false, fmt.Errorf("validation error: %w", err)
	}

	// Dedup on (entity, external id) before inserting
	var existing models.RawContentModel
	err := r.db.WithContext(ctx).
		Where("entity_id = ? AND external_id = ?", raw.EntityID, raw.ExternalID).
		First(&existing).Error
	if err == nil {
		r.logger.Debug("Content ", raw.ExternalID, " already exists in database")
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, fmt.Errorf("failed to check existing content: %w", err)
	}

	model := &models.RawContentModel{}
	model.FromDomain(raw)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return "", false, fmt.Errorf("failed to create raw content: %w", err)
	}

	r.logger.Info("Saved content ", raw.ExternalID, " for entity ", raw.EntityID)
	return raw.ID, true, nil
}

func (r *gormRawContentRepository) List(ctx context.Context, query *content.RawContentQuery) ([]*content.RawContent, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.RawContentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.RawContentModel{})

	// Apply filters
	if query.EntityID != "" {
		dbQuery = dbQuery.Where("entity_id = ?", query.EntityID)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("published_at >= ?", query.Since)
	}
	if query.Language != "" {
		dbQuery = dbQuery.Where("language = ?", query.Language)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "desc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch raw content: %w", err)
	}

	domainList := make([]*content.RawContent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormRawContentRepository) GetByID(ctx context.Context, rawContentID string) (*content.RawContent, error) {
	var model models.RawContentModel
	if err := r.db.WithContext(ctx).Where("id = ?", rawContentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("raw content with ID %s not found", rawContentID)
		}
		return nil, fmt.Errorf("failed to fetch raw content: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRawContentRepository) ListUnprocessed(ctx context.Context, limit int) ([]*content.RawContent, error) {
	var modelList []*models.RawContentModel
	err := r.db.WithContext(ctx).
		Model(&models.RawContentModel{}).
		Joins("LEFT JOIN processed_content ON processed_content.raw_content_id = raw_content.id").
		Where("processed_content.id IS NULL").
		Where("(raw_content.language IN ? OR raw_content.language = '')",
			[]string{content.LanguageEnglish, content.LanguageUnknown}).
		Order("raw_content.published_at asc").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unprocessed content: %w", err)
	}

	domainList := make([]*content.RawContent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
