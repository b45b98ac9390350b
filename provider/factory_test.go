package provider

import (
	"testing"

	"shopagent/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "ollama provider with defaults",
			config: Config{
				Type: ProviderTypeOllama,
			},
			expectError: false,
		},
		{
			name: "ollama provider with custom config",
			config: Config{
				Type:    ProviderTypeOllama,
				BaseURL: "http://localhost:11434",
				Model:   "llama3.1",
			},
			expectError: false,
		},
		{
			name: "openai provider",
			config: Config{
				Type:   ProviderTypeOpenAI,
				Model:  "gpt-4o-mini",
				APIKey: "test-key",
			},
			expectError: false,
		},
		{
			name: "openai provider without key",
			config: Config{
				Type:  ProviderTypeOpenAI,
				Model: "gpt-4o-mini",
			},
			expectError: true,
		},
		{
			name: "openrouter provider",
			config: Config{
				Type:   ProviderTypeOpenRouter,
				Model:  "openai/gpt-4o-mini",
				APIKey: "test-key",
			},
			expectError: false,
		},
		{
			name: "anthropic provider",
			config: Config{
				Type:   ProviderTypeAnthropic,
				APIKey: "test-key",
			},
			expectError: false,
		},
		{
			name: "anthropic provider without key",
			config: Config{
				Type: ProviderTypeAnthropic,
			},
			expectError: true,
		},
		{
			name: "unknown provider type",
			config: Config{
				Type: ProviderType("mystery"),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if p != nil {
					t.Error("expected nil provider on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p == nil {
				t.Fatal("expected non-nil provider")
			}
			var _ model.Provider = p
		})
	}
}

func TestMapProviderIDToType(t *testing.T) {
	tests := []struct {
		id       string
		expected ProviderType
	}{
		{"ollama", ProviderTypeOllama},
		{"openrouter", ProviderTypeOpenRouter},
		{"openai", ProviderTypeOpenAI},
		{"anthropic", ProviderTypeAnthropic},
		{"mystery", ProviderType("mystery")},
	}

	for _, tt := range tests {
		if got := MapProviderIDToType(tt.id); got != tt.expected {
			t.Errorf("MapProviderIDToType(%q): expected %q, got %q", tt.id, tt.expected, got)
		}
	}
}

func TestSetModel(t *testing.T) {
	p, err := NewOllamaProvider("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GetModel() != "llama3.1:latest" {
		t.Errorf("expected default model, got %q", p.GetModel())
	}

	p.SetModel("llama3.2:latest")
	if p.GetModel() != "llama3.2:latest" {
		t.Errorf("expected updated model, got %q", p.GetModel())
	}
}
