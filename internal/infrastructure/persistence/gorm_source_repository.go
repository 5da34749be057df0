package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence/models"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

type gormSourceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSourceRepository creates a new GORM-based SourceRepository implementation
func NewGormSourceRepository(db *gorm.DB, logger logger.Logger) (feed.SourceRepository, error) {
	return &gormSourceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSourceRepository) GetOrCreateByType(ctx context.Context, sourceType, name, apiEndpoint string) (*feed.Source, error) {
	var model models.SourceModel
	err := r.db.WithContext(ctx).Where("type = ?", sourceType).First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch source: %w", err)
	}

	now := time.Now().UTC()
	source := &feed.Source{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        sourceType,
		APIEndpoint: apiEndpoint,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	model.FromDomain(source)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	r.logger.Info("Created source record for type ", sourceType)
	return source, nil
}

func (r *gormSourceRepository) GetByType(ctx context.Context, sourceType string) (*feed.Source, error) {
	var model models.SourceModel
	err := r.db.WithContext(ctx).Where("type = ? AND is_active = ?", sourceType, true).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch source: %w", err)
	}
	return model.ToDomain(), nil
}
