package models

import (
	"time"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
)

// SourceModel is the GORM database model for sources (infrastructure concern)
type SourceModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	Name          string    `gorm:"not null;type:varchar(100)"`
	Type          string    `gorm:"not null;index;type:varchar(50)"`
	APIEndpoint   string    `gorm:"type:varchar(255)"`
	CredentialsID string    `gorm:"type:varchar(100)"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SourceModel) TableName() string {
	return "sources"
}

// ToDomain converts GORM model to domain entity
func (m *SourceModel) ToDomain() *feed.Source {
	return &feed.Source{
		ID:            m.ID,
		Name:          m.Name,
		Type:          m.Type,
		APIEndpoint:   m.APIEndpoint,
		CredentialsID: m.CredentialsID,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SourceModel) FromDomain(s *feed.Source) {
	m.ID = s.ID
	m.Name = s.Name
	m.Type = s.Type
	m.APIEndpoint = s.APIEndpoint
	m.CredentialsID = s.CredentialsID
	m.IsActive = s.IsActive
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
