package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Content type constants
const (
	ContentTypeTweet = "tweet"
)

// Language values treated as processable by the analyzer
const (
	LanguageEnglish = "en"
	LanguageUnknown = "unknown"
)

// EngagementMetrics holds the public engagement counters of a post
type EngagementMetrics struct {
	Likes    int64 `json:"likes"`
	Retweets int64 `json:"retweets"`
	Replies  int64 `json:"replies"`
	Quotes   int64 `json:"quotes"`
}

// RawContent entity represents a collected post before analysis
type RawContent struct {
	ID          string    `validate:"required,uuid4"`
	EntityID    string    `validate:"required,uuid4"`
	ExternalID  string    `validate:"required,min=1,max=100"`
	ContentType string    `validate:"required,min=1,max=50"`
	Content     string    `validate:"required"`
	Language    string    `validate:"omitempty,max=10"`
	PublishedAt time.Time `validate:"required"`
	CollectedAt time.Time `validate:"required"`
	Engagement  EngagementMetrics
	RawData     json.RawMessage
}

// Validate for validating RawContent struct
func (c *RawContent) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Processable reports whether the analyzer should consider this content.
// Only English and language-less posts are analyzed, matching the prompt language.
func (c *RawContent) Processable() bool {
	switch c.Language {
	case "", LanguageEnglish, LanguageUnknown:
		return true
	default:
		return false
	}
}
