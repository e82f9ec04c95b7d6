// Package config manages the persisted application settings: API keys, the
// preferred LLM model and cache behavior. Settings live in a JSON file in
// the user's home directory; environment variables (including a .env file)
// override persisted values without being written back.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileName is the settings file kept in the user's home directory.
const FileName = ".stocksage.json"

// Config holds the persisted application settings.
type Config struct {
	AnthropicAPIKey  string `json:"anthropic_api_key,omitempty"`
	OpenRouterAPIKey string `json:"openrouter_api_key,omitempty"`
	FinnhubAPIKey    string `json:"finnhub_api_key,omitempty"`
	DefaultModel     string `json:"default_model,omitempty"`
	CacheDisabled    bool   `json:"cache_disabled,omitempty"`

	path string
}

// Path returns the settings file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the settings file, tolerating a missing one, then applies
// environment overrides. A .env file in the working directory is loaded
// first so keys can stay out of the shell profile.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the settings from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// first run, defaults apply
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.OpenRouterAPIKey = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.FinnhubAPIKey = v
	}
	return cfg, nil
}

// Save persists the settings atomically via a temp file rename.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := Path()
		if err != nil {
			return err
		}
		c.path = path
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

// CacheDir returns the directory data clients cache under.
func (c *Config) CacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "stocksage")
	}
	return filepath.Join(os.TempDir(), "stocksage-cache")
}

// CacheEnabled reports whether response caching is on.
func (c *Config) CacheEnabled() bool {
	return !c.CacheDisabled
}

// Set updates a settings field by its key name. Used by the config command.
func (c *Config) Set(key, value string) error {
	switch key {
	case "anthropic_api_key":
		c.AnthropicAPIKey = value
	case "openrouter_api_key":
		c.OpenRouterAPIKey = value
	case "finnhub_api_key":
		c.FinnhubAPIKey = value
	case "default_model":
		c.DefaultModel = value
	case "cache_disabled":
		c.CacheDisabled = value == "true"
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys())
	}
	return nil
}

// Keys lists the settable config keys.
func Keys() []string {
	return []string{
		"anthropic_api_key",
		"openrouter_api_key",
		"finnhub_api_key",
		"default_model",
		"cache_disabled",
	}
}

// Redacted returns the settings for display, with key material masked.
func (c *Config) Redacted() map[string]string {
	model := c.DefaultModel
	if model == "" {
		model = "(unset)"
	}
	return map[string]string{
		"anthropic_api_key":  maskKey(c.AnthropicAPIKey),
		"openrouter_api_key": maskKey(c.OpenRouterAPIKey),
		"finnhub_api_key":    maskKey(c.FinnhubAPIKey),
		"default_model":      model,
		"cache_disabled":     fmt.Sprintf("%v", c.CacheDisabled),
	}
}

func maskKey(s string) string {
	if s == "" {
		return "(unset)"
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
