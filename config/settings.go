package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings mirrors the TOML settings file. Empty fields fall back to the
// built-in defaults.
type Settings struct {
	Provider       string   `toml:"provider"`
	Model          string   `toml:"model"`
	BaseURL        string   `toml:"base_url"`
	DataDirectory  string   `toml:"data_directory"`
	SystemPrompt   string   `toml:"system_prompt,omitempty"`
	ExitToken      string   `toml:"exit_token,omitempty"`
	BlockedPhrases []string `toml:"blocked_phrases,omitempty"`
}

// LoadSettings reads the settings file, writing the commented template first
// when no file exists yet.
func LoadSettings() (*Settings, error) {
	settingsPath := GetSettingsFilePath()

	if !FileExists(settingsPath) {
		if err := writeSettingsTemplate(); err != nil {
			return nil, fmt.Errorf("failed to create settings file: %w", err)
		}
		return &Settings{}, nil
	}

	cfg := &Settings{}
	if _, err := toml.DecodeFile(settingsPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return cfg, nil
}

func writeSettingsTemplate() error {
	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600: the settings file may name private hosts
	return os.WriteFile(GetSettingsFilePath(), []byte(GenerateSettingsTemplate()), 0600)
}

// SaveSettings writes settings back to the settings file.
func SaveSettings(s *Settings) error {
	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(GetSettingsFilePath(), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return nil
}
