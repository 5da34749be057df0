package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TwitterSourceType identifies the Twitter/X platform in the sources table
const TwitterSourceType = "twitter"

// TwitterSettings holds configuration for the unofficial Twitter/X client
type TwitterSettings struct {
	BaseURL                 string `mapstructure:"base_url" validate:"required,url"`
	CookiesDir              string `mapstructure:"cookies_dir" validate:"required"`
	MaxTweetsPerCollection  int    `mapstructure:"max_tweets_per_collection" validate:"required,min=1,max=500"`
	LookbackDays            int    `mapstructure:"lookback_days" validate:"required,min=1,max=30"`
	MinCookieSwitchSeconds  int    `mapstructure:"min_cookie_switch_seconds" validate:"min=0"`
	RateLimitCooldownSecond int    `mapstructure:"rate_limit_cooldown_seconds" validate:"min=0"`
}

// Validate checks that all fields in TwitterSettings are valid
func (s *TwitterSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TwitterSettings: %w", err)
	}

	return nil
}
