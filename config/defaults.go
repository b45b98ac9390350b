package config

// DefaultConfig returns the built-in configuration: a local Ollama backend
// with data under the platform default directory.
func DefaultConfig() *Config {
	return &Config{
		Provider:      "ollama",
		Model:         "",
		BaseURL:       "",
		DataDirectory: GetDefaultDataDir(),
		ExitToken:     "bye",
	}
}

// GenerateSettingsTemplate returns the commented settings file written on
// first run.
func GenerateSettingsTemplate() string {
	return `# Shopping Agent Configuration
# Location: ~/.config/shopagent/settings.toml
# This file uses TOML format: https://toml.io

# Which model backend decides the agent's actions:
# "ollama" (local), "openai", "openrouter", or "anthropic" (cloud).
# Cloud backends read their API key from the environment
# (OPENAI_API_KEY, OPENROUTER_API_KEY, ANTHROPIC_API_KEY)
# or from <data_directory>/credentials.toml.
provider = "ollama"

# Model name. Empty picks the backend's default.
model = ""

# Backend base URL. Empty picks the backend's default
# (e.g. http://localhost:11434 for Ollama).
base_url = ""

# Directory where transcripts and the product catalog are stored
data_directory = "~/.local/share/shopagent"

# Word that ends a session (matched case-insensitively)
exit_token = "bye"

# Override the built-in system prompt (optional)
system_prompt = ""
`
}
