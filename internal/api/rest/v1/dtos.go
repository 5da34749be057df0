package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
)

// BasePath is the URL prefix of this API version
const BasePath = "/api/v1"

// ErrorResponse carries an error message to the client
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries an informational message to the client
type InfoResponse struct {
	Message string `json:"message"`
}

// AddAccountRequest is the body for registering an account for collection
type AddAccountRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// Validate for validating AddAccountRequest struct
func (r *AddAccountRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for AddAccountRequest: %w", err)
	}

	return nil
}

// EntityResponse is the API shape of a tracked account
type EntityResponse struct {
	ID             string    `json:"id"`
	ExternalID     string    `json:"external_id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Description    string    `json:"description"`
	FollowersCount int64     `json:"followers_count"`
	RelevanceScore float64   `json:"relevance_score"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func newEntityResponse(entity *feed.TrackedEntity) EntityResponse {
	return EntityResponse{
		ID:             entity.ID,
		ExternalID:     entity.ExternalID,
		Name:           entity.Name,
		Username:       entity.Username,
		Description:    entity.Description,
		FollowersCount: entity.FollowersCount,
		RelevanceScore: entity.RelevanceScore,
		IsActive:       entity.IsActive,
		CreatedAt:      entity.CreatedAt,
	}
}

// SeedResponse reports the outcome of seeding the default account list
type SeedResponse struct {
	Added int `json:"added"`
}

// EngagementResponse is the API shape of a post's engagement counters
type EngagementResponse struct {
	Likes    int64 `json:"likes"`
	Retweets int64 `json:"retweets"`
	Replies  int64 `json:"replies"`
	Quotes   int64 `json:"quotes"`
}

// RawContentResponse is the API shape of a collected post
type RawContentResponse struct {
	ID          string             `json:"id"`
	EntityID    string             `json:"entity_id"`
	ExternalID  string             `json:"external_id"`
	ContentType string             `json:"content_type"`
	Content     string             `json:"content"`
	Language    string             `json:"language"`
	PublishedAt time.Time          `json:"published_at"`
	CollectedAt time.Time          `json:"collected_at"`
	Engagement  EngagementResponse `json:"engagement"`
}

func newRawContentResponse(raw *content.RawContent) RawContentResponse {
	return RawContentResponse{
		ID:          raw.ID,
		EntityID:    raw.EntityID,
		ExternalID:  raw.ExternalID,
		ContentType: raw.ContentType,
		Content:     raw.Content,
		Language:    raw.Language,
		PublishedAt: raw.PublishedAt,
		CollectedAt: raw.CollectedAt,
		Engagement: EngagementResponse{
			Likes:    raw.Engagement.Likes,
			Retweets: raw.Engagement.Retweets,
			Replies:  raw.Engagement.Replies,
			Quotes:   raw.Engagement.Quotes,
		},
	}
}

// ProcessedContentResponse is the API shape of one analysis result
type ProcessedContentResponse struct {
	ID                string    `json:"id"`
	RawContentID      string    `json:"raw_content_id"`
	SentimentScore    float64   `json:"sentiment_score"`
	ImpactScore       float64   `json:"impact_score"`
	Categories        []string  `json:"categories"`
	Keywords          []string  `json:"keywords"`
	EntitiesMentioned []string  `json:"entities_mentioned"`
	Summary           string    `json:"summary"`
	ProcessedAt       time.Time `json:"processed_at"`
}

func newProcessedContentResponse(processed *content.ProcessedContent) ProcessedContentResponse {
	return ProcessedContentResponse{
		ID:                processed.ID,
		RawContentID:      processed.RawContentID,
		SentimentScore:    processed.SentimentScore,
		ImpactScore:       processed.ImpactScore,
		Categories:        processed.Categories,
		Keywords:          processed.Keywords,
		EntitiesMentioned: processed.EntitiesMentioned,
		Summary:           processed.Summary,
		ProcessedAt:       processed.ProcessedAt,
	}
}

// SummariesResponse wraps the recent market intelligence summaries
type SummariesResponse struct {
	Summaries []string `json:"summaries"`
}
