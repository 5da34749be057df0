package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// CollectionSettings holds the schedule parameters for the ingestion pipeline
type CollectionSettings struct {
	IntervalMinutes int `mapstructure:"interval_minutes" validate:"required,min=1,max=1440"`
	ProcessingLimit int `mapstructure:"processing_limit" validate:"required,min=1,max=1000"`
}

// Validate checks that all fields in CollectionSettings are valid
func (s *CollectionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CollectionSettings: %w", err)
	}

	return nil
}

// CollectorConfig aggregates the settings needed by the collector daemon
type CollectorConfig struct {
	Logger     LoggerSettings     `mapstructure:"logger"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Twitter    TwitterSettings    `mapstructure:"twitter"`
	OpenRouter OpenRouterSettings `mapstructure:"openrouter"`
	Collection CollectionSettings `mapstructure:"collection"`
}

// Validate checks every settings section of the collector config
func (c *CollectorConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Twitter.Validate(); err != nil {
		return err
	}
	if err := c.OpenRouter.Validate(); err != nil {
		return err
	}
	return c.Collection.Validate()
}

// RestConfig aggregates the settings needed by the REST API server.
// The Twitter section is required because registering an account resolves
// the username against the platform.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Cache    CacheSettings    `mapstructure:"cache"`
	Twitter  TwitterSettings  `mapstructure:"twitter"`
}

// Validate checks every settings section of the REST config
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return c.Twitter.Validate()
}

// InitializeCollectorConfig loads and validates the collector configuration from a YAML file.
// Environment variables override file values, e.g. DATABASE_DSN overrides database.dsn.
func InitializeCollectorConfig(configPath string) (*CollectorConfig, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var cfg CollectorConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collector config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitializeRestConfig loads and validates the REST API configuration from a YAML file
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rest config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return v, nil
}
