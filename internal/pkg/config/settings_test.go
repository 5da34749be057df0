//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name: "valid console logger",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo,
				LogType:  LogTypeConsole,
			},
			expectedError: false,
		},
		{
			name: "valid file logger with rotation",
			settings: &LoggerSettings{
				LogLevel:   LogLevelDebug,
				LogType:    LogTypeFile,
				FilePath:   "logs/collector.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     7,
			},
			expectedError: false,
		},
		{
			name: "invalid log type",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo,
				LogType:  "syslog",
			},
			expectedError: true,
		},
		{
			name: "file logger missing file path",
			settings: &LoggerSettings{
				LogLevel:   LogLevelInfo,
				LogType:    LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     7,
			},
			expectedError: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo,
				LogType:  LogTypeFile,
				FilePath: "logs/collector.log",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTwitterSettingsValidation(t *testing.T) {
	valid := &TwitterSettings{
		BaseURL:                 "https://x.com/i/api",
		CookiesDir:              "twitterCookies",
		MaxTweetsPerCollection:  100,
		LookbackDays:            1,
		MinCookieSwitchSeconds:  60,
		RateLimitCooldownSecond: 900,
	}
	assert.NoError(t, valid.Validate())

	missingDir := *valid
	missingDir.CookiesDir = ""
	assert.Error(t, missingDir.Validate())

	tooManyTweets := *valid
	tooManyTweets.MaxTweetsPerCollection = 5000
	assert.Error(t, tooManyTweets.Validate())
}

func TestOpenRouterSettingsValidation(t *testing.T) {
	valid := &OpenRouterSettings{
		BaseURL:         "https://openrouter.ai/api/v1",
		Models:          []string{"deepseek/deepseek-chat:free"},
		SummaryModel:    "deepseek/deepseek-chat:free",
		KeyEnvPrefix:    "OPENROUTER_API_KEY",
		CooldownSeconds: 60,
	}
	assert.NoError(t, valid.Validate())

	noModels := *valid
	noModels.Models = nil
	assert.Error(t, noModels.Validate())
}

func TestCacheSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CacheSettings{Type: MemoryCacheType, TTLSeconds: 60}).Validate())
	assert.NoError(t, (&CacheSettings{Type: RedisCacheType, RedisAddr: "localhost:6379", TTLSeconds: 60}).Validate())
	assert.Error(t, (&CacheSettings{Type: RedisCacheType, TTLSeconds: 60}).Validate())
	assert.Error(t, (&CacheSettings{Type: "memcached", TTLSeconds: 60}).Validate())
}

func TestCollectionSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CollectionSettings{IntervalMinutes: 5, ProcessingLimit: 100}).Validate())
	assert.Error(t, (&CollectionSettings{IntervalMinutes: 0, ProcessingLimit: 100}).Validate())
}
