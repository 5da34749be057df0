package content

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// RawContentQuery filters and paginates raw content listings
type RawContentQuery struct {
	EntityID  string    `validate:"omitempty,uuid4"`
	Since     time.Time
	Language  string    `validate:"omitempty,max=10"`
	Limit     int       `validate:"min=0,max=500"`
	Offset    int       `validate:"min=0"`
	SortBy    string    `validate:"omitempty,oneof=published_at collected_at"`
	SortOrder string    `validate:"omitempty,oneof=asc desc"`
}

// NewRawContentQuery creates a RawContentQuery with default pagination
func NewRawContentQuery() *RawContentQuery {
	return &RawContentQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "published_at",
		SortOrder: "desc",
	}
}

// Validate for validating RawContentQuery struct
func (q *RawContentQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for RawContentQuery: %w", err)
	}

	return nil
}

// ProcessedContentQuery filters and paginates sentiment result listings
type ProcessedContentQuery struct {
	Since     time.Time
	Category  string    `validate:"omitempty,max=50"`
	MinImpact float64   `validate:"min=0,max=1"`
	Limit     int       `validate:"min=0,max=500"`
	Offset    int       `validate:"min=0"`
}

// NewProcessedContentQuery creates a ProcessedContentQuery with default pagination
func NewProcessedContentQuery() *ProcessedContentQuery {
	return &ProcessedContentQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating ProcessedContentQuery struct
func (q *ProcessedContentQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ProcessedContentQuery: %w", err)
	}

	return nil
}
