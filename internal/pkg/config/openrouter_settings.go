package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OpenRouterSettings holds configuration for the OpenRouter chat-completion client
type OpenRouterSettings struct {
	BaseURL          string   `mapstructure:"base_url" validate:"required,url"`
	Models           []string `mapstructure:"models" validate:"required,min=1,dive,required"`
	SummaryModel     string   `mapstructure:"summary_model" validate:"required"`
	KeyEnvPrefix     string   `mapstructure:"key_env_prefix" validate:"required"`
	CooldownSeconds  int      `mapstructure:"cooldown_seconds" validate:"min=1"`
	RequestTimeoutMS int      `mapstructure:"request_timeout_ms" validate:"min=0"`
}

// Validate checks that all fields in OpenRouterSettings are valid
func (s *OpenRouterSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OpenRouterSettings: %w", err)
	}

	return nil
}
