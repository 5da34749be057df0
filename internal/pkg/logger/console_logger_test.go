//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xLang1234/PythonBE/internal/pkg/config"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer

	// Create logger with custom output for testing
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := slog.NewTextHandler(&buf, opts)
	log := &ConsoleLogger{logger: slog.New(handler)}

	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_DebugFiltered(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := &ConsoleLogger{logger: slog.New(handler)}

	log.Debug("debug message")
	assert.NotContains(t, buf.String(), "debug message")
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, log)

	require.NotPanics(t, func() {
		log.Info("test")
		log.Warn("test")
		log.Error("test")
	})
}
