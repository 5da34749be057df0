package openrouter

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/xLang1234/PythonBE/internal/observability"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// KeyManager rotates between several OpenRouter API keys, putting keys that
// hit a rate limit on a cooldown before they are used again.
type KeyManager struct {
	mu            sync.Mutex
	keys          []string
	currentIndex  int
	cooldownUntil map[string]time.Time
	cooldown      time.Duration
	now           func() time.Time
	logger        logger.Logger
}

// NewKeyManager creates a key manager over an explicit key list
func NewKeyManager(keys []string, cooldown time.Duration, log logger.Logger) (*KeyManager, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("at least one API key must be provided")
	}

	return &KeyManager{
		keys:          keys,
		cooldownUntil: make(map[string]time.Time),
		cooldown:      cooldown,
		now:           time.Now,
		logger:        log,
	}, nil
}

// NewKeyManagerFromEnv loads keys from the environment: the bare prefix
// variable first, then PREFIX_1, PREFIX_2, ... until the first gap.
func NewKeyManagerFromEnv(envPrefix string, cooldown time.Duration, log logger.Logger) (*KeyManager, error) {
	var keys []string

	if key := os.Getenv(envPrefix); key != "" {
		keys = append(keys, key)
	}
	for i := 1; ; i++ {
		key := os.Getenv(envPrefix + "_" + strconv.Itoa(i))
		if key == "" {
			break
		}
		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("no API keys found with prefix %q", envPrefix)
	}
	log.Info("Loaded ", len(keys), " API keys from environment")

	return NewKeyManager(keys, cooldown, log)
}

// Count returns the number of keys in rotation
func (m *KeyManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

// CurrentKey returns the key to use for the next request, rotating off a
// key that is still cooling down.
func (m *KeyManager) CurrentKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.keys[m.currentIndex]
	if until, limited := m.cooldownUntil[current]; limited && m.now().Before(until) {
		m.logger.Debug("Current API key is cooling down, rotating")
		return m.rotateLocked(false)
	}
	return current
}

// RotateOnRateLimit puts the current key on cooldown and advances the
// rotation. It is called after a 429 response.
func (m *KeyManager) RotateOnRateLimit() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.keys[m.currentIndex]
	m.cooldownUntil[current] = m.now().Add(m.cooldown)
	m.logger.Warn("API key rate limited, cooling down for ", m.cooldown)
	observability.APIKeyRotations.WithLabelValues("rate_limit").Inc()

	return m.rotateLocked(false)
}

// Rotate advances to the next key without marking the current one limited.
// It is called after non-rate-limit request failures.
func (m *KeyManager) Rotate() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	observability.APIKeyRotations.WithLabelValues("error").Inc()
	return m.rotateLocked(false)
}

// rotateLocked advances to the next key that is not cooling down. When every
// key is cooling down the cooldowns are cleared so requests keep flowing.
// Callers must hold mu.
func (m *KeyManager) rotateLocked(cleared bool) string {
	if len(m.keys) == 1 {
		if _, limited := m.cooldownUntil[m.keys[0]]; limited {
			m.logger.Warn("Only one API key available, removing cooldown")
			delete(m.cooldownUntil, m.keys[0])
		}
		return m.keys[0]
	}

	for i := 1; i <= len(m.keys); i++ {
		candidate := m.keys[(m.currentIndex+i)%len(m.keys)]
		until, limited := m.cooldownUntil[candidate]
		if !limited || !m.now().Before(until) {
			delete(m.cooldownUntil, candidate)
			m.currentIndex = (m.currentIndex + i) % len(m.keys)
			return candidate
		}
	}

	if cleared {
		return m.keys[m.currentIndex]
	}

	m.logger.Warn("Every API key is cooling down, clearing cooldowns")
	m.cooldownUntil = make(map[string]time.Time)
	return m.rotateLocked(true)
}
