package models

import (
	"encoding/json"
	"time"

	"github.com/xLang1234/PythonBE/internal/domain/content"
)

// RawContentModel is the GORM database model for collected posts (infrastructure concern)
type RawContentModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	EntityID          string    `gorm:"not null;type:uuid;uniqueIndex:idx_raw_content_entity_external"`
	ExternalID        string    `gorm:"not null;type:varchar(100);uniqueIndex:idx_raw_content_entity_external"`
	ContentType       string    `gorm:"not null;type:varchar(50)"`
	Content           string    `gorm:"not null;type:text"`
	Language          string    `gorm:"type:varchar(10);index"`
	PublishedAt       time.Time `gorm:"not null;index"`
	CollectedAt       time.Time `gorm:"not null"`
	EngagementMetrics string    `gorm:"type:text"`
	RawData           string    `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (RawContentModel) TableName() string {
	return "raw_content"
}

// ToDomain converts GORM model to domain entity
func (m *RawContentModel) ToDomain() *content.RawContent {
	var engagement content.EngagementMetrics
	if m.EngagementMetrics != "" {
		// Tolerate legacy rows with malformed metrics
		_ = json.Unmarshal([]byte(m.EngagementMetrics), &engagement)
	}

	return &content.RawContent{
		ID:          m.ID,
		EntityID:    m.EntityID,
		ExternalID:  m.ExternalID,
		ContentType: m.ContentType,
		Content:     m.Content,
		Language:    m.Language,
		PublishedAt: m.PublishedAt,
		CollectedAt: m.CollectedAt,
		Engagement:  engagement,
		RawData:     json.RawMessage(m.RawData),
	}
}

// FromDomain converts domain entity to GORM model
func (m *RawContentModel) FromDomain(c *content.RawContent) {
	engagement, _ := json.Marshal(c.Engagement)

	m.ID = c.ID
	m.EntityID = c.EntityID
	m.ExternalID = c.ExternalID
	m.ContentType = c.ContentType
	m.Content = c.Content
	m.Language = c.Language
	m.PublishedAt = c.PublishedAt
	m.CollectedAt = c.CollectedAt
	m.EngagementMetrics = string(engagement)
	m.RawData = string(c.RawData)
}
