package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProcessedContent entity holds the analysis result for one raw content row
type ProcessedContent struct {
	ID                string    `validate:"required,uuid4"`
	RawContentID      string    `validate:"required,uuid4"`
	SentimentScore    float64   `validate:"min=-1,max=1"`
	ImpactScore       float64   `validate:"min=0,max=1"`
	Categories        []string
	Keywords          []string
	EntitiesMentioned []string
	Summary           string
	ProcessedAt       time.Time `validate:"required"`
}

// Validate for validating ProcessedContent struct
func (p *ProcessedContent) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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
