package models

import (
	"encoding/json"
	"time"

	"github.com/xLang1234/PythonBE/internal/domain/content"
)

// ProcessedContentModel is the GORM database model for analysis results (infrastructure concern).
// List fields are stored as JSON text so the schema works on both postgres and sqlite.
type ProcessedContentModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	RawContentID      string    `gorm:"not null;type:uuid;uniqueIndex"`
	SentimentScore    float64
	ImpactScore       float64   `gorm:"index"`
	Categories        string    `gorm:"type:text"`
	Keywords          string    `gorm:"type:text"`
	EntitiesMentioned string    `gorm:"type:text"`
	Summary           string    `gorm:"type:text"`
	ProcessedAt       time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ProcessedContentModel) TableName() string {
	return "processed_content"
}

// ToDomain converts GORM model to domain entity
func (m *ProcessedContentModel) ToDomain() *content.ProcessedContent {
	return &content.ProcessedContent{
		ID:                m.ID,
		RawContentID:      m.RawContentID,
		SentimentScore:    m.SentimentScore,
		ImpactScore:       m.ImpactScore,
		Categories:        unmarshalList(m.Categories),
		Keywords:          unmarshalList(m.Keywords),
		EntitiesMentioned: unmarshalList(m.EntitiesMentioned),
		Summary:           m.Summary,
		ProcessedAt:       m.ProcessedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProcessedContentModel) FromDomain(p *content.ProcessedContent) {
	m.ID = p.ID
	m.RawContentID = p.RawContentID
	m.SentimentScore = p.SentimentScore
	m.ImpactScore = p.ImpactScore
	m.Categories = marshalList(p.Categories)
	m.Keywords = marshalList(p.Keywords)
	m.EntitiesMentioned = marshalList(p.EntitiesMentioned)
	m.Summary = p.Summary
	m.ProcessedAt = p.ProcessedAt
}

func marshalList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func unmarshalList(data string) []string {
	if data == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return []string{}
	}
	return items
}
