package feed

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// TrackedEntity entity represents an account on a source platform whose posts are collected
type TrackedEntity struct {
	ID             string    `validate:"required,uuid4"`
	SourceID       string    `validate:"required,uuid4"`
	ExternalID     string    `validate:"required,min=1,max=100"`
	Name           string    `validate:"required,min=1,max=100"`
	Username       string    `validate:"omitempty,max=100"`
	Description    string
	FollowersCount int64     `validate:"min=0"`
	RelevanceScore float64   `validate:"min=0,max=1"`
	IsActive       bool
	CreatedAt      time.Time `validate:"required"`
	UpdatedAt      time.Time `validate:"required"`
}

// Validate for validating TrackedEntity struct
func (e *TrackedEntity) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
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

// EntityQuery filters and paginates tracked entity listings
type EntityQuery struct {
	Username   string `validate:"omitempty,max=100"`
	ActiveOnly bool
	Limit      int    `validate:"min=0,max=500"`
	Offset     int    `validate:"min=0"`
	SortBy     string `validate:"omitempty,oneof=username followers_count relevance_score created_at"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewEntityQuery creates an EntityQuery with default pagination
func NewEntityQuery() *EntityQuery {
	return &EntityQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating EntityQuery struct
func (q *EntityQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for EntityQuery: %w", err)
	}

	return nil
}
