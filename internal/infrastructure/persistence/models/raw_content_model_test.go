//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xLang1234/PythonBE/internal/domain/content"
)

func TestRawContentModel_FromDomain_SerializesEngagement(t *testing.T) {
	raw := &content.RawContent{
		ID:          "a1b2c3d4-0000-4000-8000-123456789abc",
		EntityID:    "d3b07384-d9a0-4c9f-8f2e-123456789abc",
		ExternalID:  "1234567890",
		ContentType: content.ContentTypeTweet,
		Content:     "BTC is breaking out",
		Language:    "en",
		PublishedAt: time.Now().UTC(),
		CollectedAt: time.Now().UTC(),
		Engagement: content.EngagementMetrics{
			Likes:    10,
			Retweets: 2,
			Replies:  1,
			Quotes:   3,
		},
	}

	var model RawContentModel
	model.FromDomain(raw)

	assert.Equal(t, raw.ID, model.ID)
	assert.Contains(t, model.EngagementMetrics, `"likes":10`)

	roundTripped := model.ToDomain()
	assert.Equal(t, raw.Engagement, roundTripped.Engagement)
	assert.Equal(t, raw.Content, roundTripped.Content)
}

func TestRawContentModel_ToDomain_ToleratesMalformedMetrics(t *testing.T) {
	model := &RawContentModel{
		ID:                "a1b2c3d4-0000-4000-8000-123456789abc",
		EntityID:          "d3b07384-d9a0-4c9f-8f2e-123456789abc",
		ExternalID:        "1234567890",
		ContentType:       content.ContentTypeTweet,
		Content:           "BTC is breaking out",
		PublishedAt:       time.Now().UTC(),
		CollectedAt:       time.Now().UTC(),
		EngagementMetrics: "{not json",
	}

	raw := model.ToDomain()

	assert.Equal(t, content.EngagementMetrics{}, raw.Engagement)
	assert.Equal(t, model.Content, raw.Content)
}
