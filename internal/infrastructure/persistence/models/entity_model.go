package models

import (
	"time"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
)

// EntityModel is the GORM database model for tracked entities (infrastructure concern)
type EntityModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	SourceID         string    `gorm:"not null;type:uuid;uniqueIndex:idx_entities_source_external"`
	EntityExternalID string    `gorm:"not null;type:varchar(100);uniqueIndex:idx_entities_source_external"`
	Name             string    `gorm:"not null;type:varchar(100)"`
	Username         string    `gorm:"type:varchar(100);index"`
	Description      string    `gorm:"type:text"`
	FollowersCount   int64
	RelevanceScore   float64
	IsActive         bool      `gorm:"not null;default:true;index"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EntityModel) TableName() string {
	return "entities"
}

// ToDomain converts GORM model to domain entity
func (m *EntityModel) ToDomain() *feed.TrackedEntity {
	return &feed.TrackedEntity{
		ID:             m.ID,
		SourceID:       m.SourceID,
		ExternalID:     m.EntityExternalID,
		Name:           m.Name,
		Username:       m.Username,
		Description:    m.Description,
		FollowersCount: m.FollowersCount,
		RelevanceScore: m.RelevanceScore,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EntityModel) FromDomain(e *feed.TrackedEntity) {
	m.ID = e.ID
	m.SourceID = e.SourceID
	m.EntityExternalID = e.ExternalID
	m.Name = e.Name
	m.Username = e.Username
	m.Description = e.Description
	m.FollowersCount = e.FollowersCount
	m.RelevanceScore = e.RelevanceScore
	m.IsActive = e.IsActive
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}
