package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence/models"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

type gormEntityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEntityRepository creates a new GORM-based EntityRepository implementation
func NewGormEntityRepository(db *gorm.DB, logger logger.Logger) (feed.EntityRepository, error) {
	return &gormEntityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEntityRepository) Create(ctx context.Context, entity *feed.TrackedEntity) error {
	// Validate domain entity (business rules)
	if err := entity.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EntityModel{}
	model.FromDomain(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	r.logger.Info("Created tracked entity ", entity.Username, " with id ", entity.ID)
	return nil
}

func (r *gormEntityRepository) List(ctx context.Context, query *feed.EntityQuery) ([]*feed.TrackedEntity, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EntityModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EntityModel{})

	// Apply filters
	if query.Username != "" {
		dbQuery = dbQuery.Where("username LIKE ?", "%"+query.Username+"%")
	}
	if query.ActiveOnly {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
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
		return nil, fmt.Errorf("failed to fetch entities: %w", err)
	}

	domainList := make([]*feed.TrackedEntity, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormEntityRepository) GetByID(ctx context.Context, entityID string) (*feed.TrackedEntity, error) {
	var model models.EntityModel
	if err := r.db.WithContext(ctx).Where("id = ?", entityID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("entity with ID %s not found", entityID)
		}
		return nil, fmt.Errorf("failed to fetch entity: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEntityRepository) GetByExternalID(ctx context.Context, sourceID, externalID string) (*feed.TrackedEntity, error) {
	var model models.EntityModel
	err := r.db.WithContext(ctx).
		Where("source_id = ? AND entity_external_id = ?", sourceID, externalID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch entity: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEntityRepository) ListActiveBySource(ctx context.Context, sourceID string) ([]*feed.TrackedEntity, error) {
	var modelList []*models.EntityModel
	err := r.db.WithContext(ctx).
		Where("source_id = ? AND is_active = ?", sourceID, true).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active entities: %w", err)
	}

	domainList := make([]*feed.TrackedEntity, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEntityRepository) DeactivateByID(ctx context.Context, entityID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.EntityModel{}).
		Where("id = ?", entityID).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate entity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("entity with ID %s not found", entityID)
	}

	r.logger.Info("Deactivated tracked entity with id ", entityID)
	return nil
}
