package twitterx

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xLang1234/PythonBE/internal/observability"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// CookieManager rotates between several Twitter session cookie files.
// Spreading requests over multiple sessions softens rate limits and gives
// a fallback when a session expires.
type CookieManager struct {
	mu             sync.Mutex
	cookiesDir     string
	cookieFiles    []string
	currentIndex   int
	lastSwitchTime time.Time
	minSwitchEvery time.Duration
	logger         logger.Logger
}

// NewCookieManager creates a cookie manager over the given directory,
// creating it when absent and loading every *.json session file in it.
func NewCookieManager(cookiesDir string, minSwitchEvery time.Duration, log logger.Logger) (*CookieManager, error) {
	if err := os.MkdirAll(cookiesDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cookie directory %s: %w", cookiesDir, err)
	}

	m := &CookieManager{
		cookiesDir:     cookiesDir,
		minSwitchEvery: minSwitchEvery,
		lastSwitchTime: time.Now(),
		logger:         log,
	}

	if err := m.loadAvailableCookies(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *CookieManager) loadAvailableCookies() error {
	entries, err := os.ReadDir(m.cookiesDir)
	if err != nil {
		return fmt.Errorf("failed to read cookie directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(m.cookiesDir, entry.Name()))
	}

	if len(files) == 0 {
		m.logger.Warn("No cookie files found in ", m.cookiesDir)
	} else {
		m.logger.Info("Loaded ", len(files), " cookie files")
	}

	// Randomize the initial cookie selection
	rand.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})

	m.cookieFiles = files
	m.currentIndex = 0
	return nil
}

// Count returns the number of cookie files in rotation
func (m *CookieManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cookieFiles)
}

// Current returns the cookie file currently in use
func (m *CookieManager) Current() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.cookieFiles) == 0 {
		return "", fmt.Errorf("no cookie files available")
	}
	return m.cookieFiles[m.currentIndex], nil
}

// Next advances the rotation and returns the next cookie file.
// Rotation is skipped when the minimum switch interval has not elapsed,
// unless force is set.
func (m *CookieManager) Next(force bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.cookieFiles) == 0 {
		return "", fmt.Errorf("no cookie files available for rotation")
	}

	if force || time.Since(m.lastSwitchTime) >= m.minSwitchEvery {
		m.currentIndex = (m.currentIndex + 1) % len(m.cookieFiles)
		m.lastSwitchTime = time.Now()
		observability.CookieRotations.Inc()
		m.logger.Info("Rotated to cookie file ", m.currentIndex+1, "/", len(m.cookieFiles))
	}

	return m.cookieFiles[m.currentIndex], nil
}

// Random returns a random cookie file from the rotation
func (m *CookieManager) Random() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.cookieFiles) == 0 {
		return "", fmt.Errorf("no cookie files available")
	}
	return m.cookieFiles[rand.Intn(len(m.cookieFiles))], nil
}

// MarkInvalid removes a cookie file from rotation, preserving it on disk
// under an .invalid suffix for inspection.
func (m *CookieManager) MarkInvalid(cookieFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, f := range m.cookieFiles {
		if f == cookieFile {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("cookie file %s not in rotation", cookieFile)
	}

	invalidName := fmt.Sprintf("%s.invalid.%d", cookieFile, time.Now().Unix())
	if err := os.Rename(cookieFile, invalidName); err != nil {
		return fmt.Errorf("failed to rename invalid cookie file: %w", err)
	}

	m.cookieFiles = append(m.cookieFiles[:idx], m.cookieFiles[idx+1:]...)
	if len(m.cookieFiles) == 0 {
		m.currentIndex = 0
	} else {
		m.currentIndex = m.currentIndex % len(m.cookieFiles)
	}

	m.logger.Warn("Marked cookie file ", filepath.Base(cookieFile), " as invalid and removed it from rotation")
	return nil
}

// Add stores a new session cookie file and appends it to the rotation
func (m *CookieManager) Add(username string, cookieData map[string]string) (string, error) {
	data, err := json.MarshalIndent(cookieData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal cookie data: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.json", username, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.cookiesDir, filename)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write cookie file: %w", err)
	}

	m.mu.Lock()
	m.cookieFiles = append(m.cookieFiles, path)
	m.mu.Unlock()

	m.logger.Info("Added new cookie file for ", username, " to rotation")
	return path, nil
}

// readCookieFile parses a session cookie file into its key/value pairs
func readCookieFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read cookie file: %w", err)
	}

	var cookies map[string]string
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to parse cookie file %s: %w", filepath.Base(path), err)
	}
	return cookies, nil
}
