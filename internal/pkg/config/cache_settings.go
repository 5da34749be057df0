package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cache backend constants
const (
	MemoryCacheType = "memory"
	RedisCacheType  = "redis"
)

// CacheSettings holds configuration for the read-side cache
type CacheSettings struct {
	Type       string `mapstructure:"type" validate:"required,oneof=memory redis"`
	RedisAddr  string `mapstructure:"redis_addr"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"min=1"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}

	if s.Type == RedisCacheType && s.RedisAddr == "" {
		return fmt.Errorf("redis_addr is required for redis cache")
	}

	return nil
}
