package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.AnthropicAPIKey != "" || cfg.DefaultModel != "" || cfg.CacheDisabled {
		t.Fatalf("missing file should yield defaults, got %+v", cfg)
	}
	if !cfg.CacheEnabled() {
		t.Fatalf("cache should default to enabled")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.AnthropicAPIKey = "sk-ant-test-1234"
	cfg.DefaultModel = "claude-sonnet-4-5-20250929"
	cfg.CacheDisabled = true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The temp file must be gone after the atomic rename.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind, stat err %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.AnthropicAPIKey != cfg.AnthropicAPIKey ||
		loaded.DefaultModel != cfg.DefaultModel ||
		!loaded.CacheDisabled {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadFromRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"finnhub_api_key":"from-file"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("FINNHUB_API_KEY", "from-env")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.FinnhubAPIKey != "from-env" {
		t.Fatalf("env should override file, got %q", cfg.FinnhubAPIKey)
	}
}

func TestSetKeys(t *testing.T) {
	cfg := &Config{}
	for _, key := range Keys() {
		if err := cfg.Set(key, "true"); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}
	if !cfg.CacheDisabled {
		t.Fatalf("cache_disabled=true not applied")
	}
	if err := cfg.Set("bogus", "x"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestRedactedMasksKeys(t *testing.T) {
	cfg := &Config{AnthropicAPIKey: "sk-ant-abcdef123456"}
	red := cfg.Redacted()

	masked := red["anthropic_api_key"]
	if strings.Contains(masked, "abcdef") {
		t.Fatalf("key material leaked: %q", masked)
	}
	if !strings.HasPrefix(masked, "sk-a") || !strings.HasSuffix(masked, "3456") {
		t.Fatalf("expected prefix/suffix mask, got %q", masked)
	}
	if red["openrouter_api_key"] != "(unset)" {
		t.Fatalf("unset key should show (unset), got %q", red["openrouter_api_key"])
	}
}
