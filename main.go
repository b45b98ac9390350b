package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"shopagent/agent"
	"shopagent/catalog"
	"shopagent/config"
	"shopagent/provider"
	"shopagent/storage"
)

const Version = "v0.1.0"

var (
	userStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	agentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir()
	config.InitDebugLog(dataDir)

	apiKey, err := config.APIKeyFor(cfg.Provider, dataDir)
	if err != nil {
		return err
	}

	p, err := provider.NewProvider(provider.Config{
		Type:    provider.MapProviderIDToType(cfg.Provider),
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		APIKey:  apiKey,
	})
	if err != nil {
		return err
	}

	store, err := catalog.OpenStore(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	transcripts, err := storage.NewTranscriptStore(dataDir)
	if err != nil {
		return err
	}

	if config.Debug {
		config.DebugLog.Printf("provider=%s model=%s data_dir=%s", cfg.Provider, p.GetModel(), dataDir)
	}

	opts := []agent.Option{}
	if cfg.SystemPrompt != "" {
		opts = append(opts, agent.WithSystemPrompt(cfg.SystemPrompt))
	}
	if len(cfg.BlockedPhrases) > 0 {
		opts = append(opts, agent.WithBlockedPhrases(cfg.BlockedPhrases))
	}
	a := agent.New(p, store, opts...)

	sessionOpts := []agent.SessionOption{
		agent.WithLabels(
			userStyle.Render("You:")+" ",
			agentStyle.Render("Shopping Assistant:")+" ",
		),
		agent.WithTranscriptStore(transcripts, cfg.Provider),
	}
	if cfg.ExitToken != "" {
		sessionOpts = append(sessionOpts, agent.WithExitToken(cfg.ExitToken))
	}

	session := agent.NewSession(a, os.Stdin, os.Stdout, sessionOpts...)
	return session.Run(context.Background())
}
