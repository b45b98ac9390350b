// Package config loads the shopping agent's settings from a TOML file with
// environment-variable overrides, and resolves API credentials.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config is the resolved runtime configuration.
type Config struct {
	Provider       string // "openai", "openrouter", "anthropic", or "ollama"
	Model          string
	BaseURL        string
	DataDirectory  string
	SystemPrompt   string // empty means the agent default
	ExitToken      string
	BlockedPhrases []string
}

var Debug = false
var DebugLog *log.Logger

// DataDir returns the data directory with ~ expanded.
func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// Load resolves configuration: defaults, then the settings file (created
// with a template on first run), then environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	cfg.applySettings(settings)
	cfg.applyEnvOverrides()

	if err := EnsureDir(cfg.DataDir()); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

func (c *Config) applySettings(s *Settings) {
	if s == nil {
		return
	}
	if s.Provider != "" {
		c.Provider = s.Provider
	}
	if s.Model != "" {
		c.Model = s.Model
	}
	if s.BaseURL != "" {
		c.BaseURL = s.BaseURL
	}
	if s.DataDirectory != "" {
		c.DataDirectory = s.DataDirectory
	}
	if s.SystemPrompt != "" {
		c.SystemPrompt = s.SystemPrompt
	}
	if s.ExitToken != "" {
		c.ExitToken = s.ExitToken
	}
	if len(s.BlockedPhrases) > 0 {
		c.BlockedPhrases = s.BlockedPhrases
	}
}

func (c *Config) applyEnvOverrides() {
	if provider := os.Getenv("SHOPAGENT_PROVIDER"); provider != "" {
		c.Provider = provider
	}
	if model := os.Getenv("SHOPAGENT_MODEL"); model != "" {
		c.Model = model
	}
	if baseURL := os.Getenv("SHOPAGENT_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}
	if dataDir := os.Getenv("SHOPAGENT_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
}

// CheckDebug reports whether debug logging is requested.
func CheckDebug() bool {
	debug := os.Getenv("SHOPAGENT_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log in the data directory when
// SHOPAGENT_DEBUG is set.
func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (SHOPAGENT_DEBUG=%s) ===", os.Getenv("SHOPAGENT_DEBUG"))
}
