package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/songbook/internal/errors"
)

// Default values applied to fields left empty on disk.
const (
	DefaultNarrowWidth = 90
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultServerAddr  = "127.0.0.1:8080"
	DefaultLocale      = "en"
	minNarrowWidth     = 40
)

// APIKeyEnvVars are checked in order when no key is stored in the config.
var APIKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

// Config holds the application configuration. Selection state is never
// stored here; a session always starts on the welcome layer.
type Config struct {
	CatalogPath          string `json:"catalog_path,omitempty"`          // Catalog file; empty uses the built-in carols
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "holly", "nord")
	NarrowWidth          int    `json:"narrow_width,omitempty"`          // Below this many columns the reader shows one pane
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification after exports
	Locale               string `json:"locale,omitempty"`                // UI language tag

	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`
	ServerAddr   string `json:"server_addr,omitempty"`

	mu       sync.RWMutex
	filePath string
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".songbook"), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from its default location, returning defaults if
// the file doesn't exist yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.songbook/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Defaults must be in place before Validate, which only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills defaults. Only called from LoadFrom before the
// Config is shared.
func (c *Config) ensureInitialized() {
	if c.NarrowWidth == 0 {
		c.NarrowWidth = DefaultNarrowWidth
	}
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
	if c.ServerAddr == "" {
		c.ServerAddr = DefaultServerAddr
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.NarrowWidth < minNarrowWidth {
		return errors.ConfigInvalid(fmt.Sprintf("narrow_width must be at least %d, got %d", minNarrowWidth, c.NarrowWidth))
	}
	if c.CatalogPath != "" {
		switch filepath.Ext(c.CatalogPath) {
		case ".yaml", ".yml", ".toml", ".json":
		default:
			return errors.ConfigInvalid(fmt.Sprintf("catalog_path %q must be a .yaml, .toml or .json file", c.CatalogPath))
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := Path()
		if err != nil {
			return errors.ConfigSaveFailed("~/.songbook/config.json", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetCatalogPath returns the configured catalog file, or "" for the built-in one.
func (c *Config) GetCatalogPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogPath
}

// SetCatalogPath sets the catalog file.
func (c *Config) SetCatalogPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CatalogPath = path
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNarrowWidth returns the single-pane breakpoint in columns.
func (c *Config) GetNarrowWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.NarrowWidth == 0 {
		return DefaultNarrowWidth
	}
	return c.NarrowWidth
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetLocale returns the UI language tag.
func (c *Config) GetLocale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Locale == "" {
		return DefaultLocale
	}
	return c.Locale
}

// GetGeminiModel returns the model used for lyrics generation.
func (c *Config) GetGeminiModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.GeminiModel == "" {
		return DefaultGeminiModel
	}
	return c.GeminiModel
}

// GeminiKey returns the stored API key, falling back to the environment.
func (c *Config) GeminiKey() string {
	c.mu.RLock()
	key := c.GeminiAPIKey
	c.mu.RUnlock()
	if key != "" {
		return key
	}
	for _, name := range APIKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetServerAddr returns the listen address for the booklet server.
func (c *Config) GetServerAddr() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ServerAddr == "" {
		return DefaultServerAddr
	}
	return c.ServerAddr
}
