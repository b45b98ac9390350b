package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SHOPAGENT_PROVIDER", "openrouter")
	t.Setenv("SHOPAGENT_MODEL", "openai/gpt-4o-mini")
	t.Setenv("SHOPAGENT_BASE_URL", "https://openrouter.ai/api/v1")
	t.Setenv("SHOPAGENT_DATA_DIR", "/tmp/shopagent-test")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Provider != "openrouter" {
		t.Errorf("expected provider override, got %q", cfg.Provider)
	}
	if cfg.Model != "openai/gpt-4o-mini" {
		t.Errorf("expected model override, got %q", cfg.Model)
	}
	if cfg.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("expected base URL override, got %q", cfg.BaseURL)
	}
	if cfg.DataDirectory != "/tmp/shopagent-test" {
		t.Errorf("expected data dir override, got %q", cfg.DataDirectory)
	}
}

func TestApplySettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applySettings(&Settings{
		Provider:  "anthropic",
		ExitToken: "quit",
	})

	if cfg.Provider != "anthropic" {
		t.Errorf("expected provider from settings, got %q", cfg.Provider)
	}
	if cfg.ExitToken != "quit" {
		t.Errorf("expected exit token from settings, got %q", cfg.ExitToken)
	}
	// Unset settings fields keep their defaults.
	if cfg.DataDirectory != GetDefaultDataDir() {
		t.Errorf("default data dir was clobbered: %q", cfg.DataDirectory)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/data", filepath.Join(home, "data")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.expected {
			t.Errorf("ExpandPath(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestLoadSettingsCreatesTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Provider != "" {
		t.Errorf("fresh template should decode to empty settings, got %+v", settings)
	}

	data, err := os.ReadFile(GetSettingsFilePath())
	if err != nil {
		t.Fatalf("settings template was not written: %v", err)
	}
	if !strings.Contains(string(data), "provider =") {
		t.Error("settings template is missing the provider key")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved := &Settings{
		Provider:       "openai",
		Model:          "gpt-4o-mini",
		ExitToken:      "done",
		BlockedPhrases: []string{"ignore previous instructions"},
	}
	if err := SaveSettings(saved); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	if loaded.Provider != "openai" || loaded.Model != "gpt-4o-mini" || loaded.ExitToken != "done" {
		t.Errorf("settings did not round-trip: %+v", loaded)
	}
	if len(loaded.BlockedPhrases) != 1 {
		t.Errorf("blocked phrases did not round-trip: %v", loaded.BlockedPhrases)
	}
}

func TestAPIKeyPrecedence(t *testing.T) {
	dataDir := t.TempDir()

	if err := SaveAPIKey("openai", "file-key", dataDir); err != nil {
		t.Fatalf("failed to save credentials: %v", err)
	}

	// File key is used when the environment is unset.
	t.Setenv("OPENAI_API_KEY", "")
	key, err := APIKeyFor("openai", dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "file-key" {
		t.Errorf("expected file key, got %q", key)
	}

	// Environment wins over the file.
	t.Setenv("OPENAI_API_KEY", "env-key")
	key, err = APIKeyFor("openai", dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" {
		t.Errorf("expected env key, got %q", key)
	}
}

func TestAPIKeyForOllamaIsEmpty(t *testing.T) {
	key, err := APIKeyFor("ollama", t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "" {
		t.Errorf("expected no key for ollama, got %q", key)
	}
}
