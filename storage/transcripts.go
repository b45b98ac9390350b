// Package storage persists session transcripts as one JSON file per session
// in the data directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopagent/model"
)

// Turn is the persisted form of one conversation turn.
type Turn struct {
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	ActionName string    `json:"action_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Transcript is one persisted session.
type Transcript struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Turns     []Turn    `json:"turns"`
}

// TranscriptMetadata is a lightweight version of Transcript for listing.
type TranscriptMetadata struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TurnCount int       `json:"turn_count"`
}

// FromModelTurns converts conversation turns to their persisted form.
func FromModelTurns(turns []model.Turn) []Turn {
	result := make([]Turn, len(turns))
	for i, t := range turns {
		result[i] = Turn{
			Role:       t.Role,
			Content:    t.Content,
			ActionName: t.ActionName,
			Timestamp:  t.Timestamp,
		}
	}
	return result
}

// TranscriptStore handles transcript persistence.
type TranscriptStore struct {
	transcriptsDir string
}

// NewTranscriptStore creates a transcript store under dataDir.
func NewTranscriptStore(dataDir string) (*TranscriptStore, error) {
	transcriptsDir := filepath.Join(dataDir, "transcripts")

	// 0700: transcripts contain conversation history
	if err := os.MkdirAll(transcriptsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create transcripts directory: %w", err)
	}

	return &TranscriptStore{transcriptsDir: transcriptsDir}, nil
}

// Save writes a transcript to disk, assigning an ID on first save.
func (s *TranscriptStore) Save(t *Transcript) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	t.UpdatedAt = time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = t.UpdatedAt
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	path := filepath.Join(s.transcriptsDir, t.ID+".json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write transcript file: %w", err)
	}

	return nil
}

// Load reads a transcript from disk by ID.
func (s *TranscriptStore) Load(id string) (*Transcript, error) {
	path := filepath.Join(s.transcriptsDir, id+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript file: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}

	return &t, nil
}

// List returns metadata for all transcripts, newest first.
func (s *TranscriptStore) List() ([]TranscriptMetadata, error) {
	entries, err := os.ReadDir(s.transcriptsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcripts directory: %w", err)
	}

	var metadata []TranscriptMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		t, err := s.Load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}

		metadata = append(metadata, TranscriptMetadata{
			ID:        t.ID,
			Provider:  t.Provider,
			Model:     t.Model,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
			TurnCount: len(t.Turns),
		})
	}

	sort.Slice(metadata, func(i, j int) bool {
		return metadata[i].UpdatedAt.After(metadata[j].UpdatedAt)
	})

	return metadata, nil
}

// Delete removes a transcript by ID.
func (s *TranscriptStore) Delete(id string) error {
	path := filepath.Join(s.transcriptsDir, id+".json")
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	return nil
}
