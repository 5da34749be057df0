package feed

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Source entity represents an upstream platform content is collected from
type Source struct {
	ID            string    `validate:"required,uuid4"`
	Name          string    `validate:"required,min=1,max=100"`
	Type          string    `validate:"required,min=1,max=50"`
	APIEndpoint   string    `validate:"omitempty,max=255"`
	CredentialsID string    `validate:"omitempty,max=100"`
	IsActive      bool
	CreatedAt     time.Time `validate:"required"`
	UpdatedAt     time.Time `validate:"required"`
}

// Validate for validating Source struct
func (s *Source) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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
