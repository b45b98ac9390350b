package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables checked per provider before the credentials file.
var credentialEnvVars = map[string]string{
	"openai":     "OPENAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
}

func credentialsPath(dataDir string) string {
	return filepath.Join(dataDir, "credentials.toml")
}

// APIKeyFor resolves the API key for a provider: environment first, then the
// credentials file in the data directory. Returns an empty string when
// neither is set; the provider constructor reports the missing key.
// Ollama needs no key and always resolves to empty.
func APIKeyFor(providerID, dataDir string) (string, error) {
	if envVar, ok := credentialEnvVars[providerID]; ok {
		if key := os.Getenv(envVar); key != "" {
			return key, nil
		}
	}

	creds, err := loadCredentials(dataDir)
	if err != nil {
		return "", err
	}
	return creds[providerID], nil
}

// SaveAPIKey stores a provider's API key in the credentials file.
func SaveAPIKey(providerID, key, dataDir string) error {
	creds, err := loadCredentials(dataDir)
	if err != nil {
		return err
	}
	creds[providerID] = key
	return saveCredentials(dataDir, creds)
}

type credentialsFile struct {
	Credentials map[string]string `toml:"credentials"`
}

func loadCredentials(dataDir string) (map[string]string, error) {
	path := credentialsPath(dataDir)

	if !FileExists(path) {
		return make(map[string]string), nil
	}

	var file credentialsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if file.Credentials == nil {
		file.Credentials = make(map[string]string)
	}

	return file.Credentials, nil
}

func saveCredentials(dataDir string, creds map[string]string) error {
	if err := EnsureDir(ExpandPath(dataDir)); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// 0600: API keys
	f, err := os.OpenFile(credentialsPath(dataDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(credentialsFile{Credentials: creds}); err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	return nil
}
