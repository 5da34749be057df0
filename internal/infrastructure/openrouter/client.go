// Package openrouter is a client for the OpenRouter chat-completion API with
// automatic API key rotation and rate-limit handling.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

const defaultRequestTimeout = 60 * time.Second

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Code    int `json:"code"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client sends chat-completion requests to OpenRouter, rotating API keys
// on rate limits and transient failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keys       *KeyManager
	logger     logger.Logger
}

// NewClient creates an OpenRouter client from settings and a key manager
func NewClient(settings *config.OpenRouterSettings, keys *KeyManager, log logger.Logger) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := defaultRequestTimeout
	if settings.RequestTimeoutMS > 0 {
		timeout = time.Duration(settings.RequestTimeoutMS) * time.Millisecond
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    settings.BaseURL,
		keys:       keys,
		logger:     log,
	}, nil
}

// ChatCompletion sends a single-prompt chat request to model and returns the
// first choice's content. Each key is tried at most twice, capped at ten
// attempts overall.
func (c *Client) ChatCompletion(ctx context.Context, model, prompt string, temperature float64) (string, error) {
	payload := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	maxRetries := c.keys.Count() * 2
	if maxRetries > 10 {
		maxRetries = 10
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		content, retryable, err := c.attempt(ctx, body)
		if err == nil {
			return content, nil
		}
		if !retryable {
			return "", err
		}
		c.logger.Warn("Chat completion attempt ", attempt+1, "/", maxRetries, " failed: ", err)
	}

	return "", fmt.Errorf("no successful response after %d attempts", maxRetries)
}

// attempt performs one request with the current key. The second return value
// reports whether the caller should retry with a rotated key.
func (c *Client) attempt(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.keys.CurrentKey())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		c.keys.Rotate()
		return "", true, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.keys.Rotate()
		return "", true, fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed chatResponse
	decodeErr := json.Unmarshal(respBody, &parsed)

	// Some providers report the limit in the body with a 200 status
	if resp.StatusCode == http.StatusTooManyRequests || (decodeErr == nil && parsed.Code == http.StatusTooManyRequests) {
		c.keys.RotateOnRateLimit()
		return "", true, fmt.Errorf("rate limit hit")
	}

	if resp.StatusCode != http.StatusOK {
		c.keys.Rotate()
		return "", true, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	if decodeErr != nil {
		c.keys.Rotate()
		return "", true, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 {
		c.keys.Rotate()
		return "", true, fmt.Errorf("response contains no choices")
	}

	return parsed.Choices[0].Message.Content, false, nil
}

// extractJSON strips markdown code fences from a model response so the
// remainder can be parsed as JSON.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
