package agent

import (
	"context"
	"strings"
	"testing"

	"shopagent/model"
	"shopagent/provider/testutil"
	"shopagent/storage"
)

func TestSessionExitTokenCaseInsensitive(t *testing.T) {
	for _, input := range []string{"bye", "BYE", "Bye"} {
		t.Run(input, func(t *testing.T) {
			provider := testutil.NewMockProvider("stub-model").
				DecideToolCall("clarify_request", map[string]any{"question": "?"})
			search := testutil.NewMockSearchProvider()
			var out strings.Builder

			session := NewSession(New(provider, search), strings.NewReader(input+"\n"), &out)
			if err := session.Run(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(out.String(), Greeting) {
				t.Error("greeting missing from session output")
			}
			if !strings.Contains(out.String(), Farewell) {
				t.Error("farewell missing from session output")
			}
			if provider.DecideCalls != 0 {
				t.Errorf("exit token triggered %d model calls", provider.DecideCalls)
			}
			if search.SearchCalls != 0 || search.DetailCalls != 0 {
				t.Error("exit token triggered search provider calls")
			}
		})
	}
}

func TestSessionExchangeThenExit(t *testing.T) {
	provider := testutil.NewMockProvider("stub-model").
		DecideToolCall("search_products", map[string]any{"keywords": []any{"shirts"}})
	search := testutil.NewMockSearchProvider()
	search.SearchFunc = func(context.Context, []string) ([]model.Product, error) {
		return []model.Product{{ID: "p1", Name: "Product 1"}}, nil
	}
	var out strings.Builder

	session := NewSession(New(provider, search), strings.NewReader("I'm looking for shirts\nbye\n"), &out)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Here are the products I found: Product 1 (ID: p1)") {
		t.Errorf("search reply missing from output:\n%s", output)
	}
	if !strings.HasSuffix(strings.TrimSpace(output), Farewell) {
		t.Errorf("farewell is not the last reply:\n%s", output)
	}
	if provider.DecideCalls != 1 {
		t.Errorf("expected 1 model call, got %d", provider.DecideCalls)
	}
}

func TestSessionEndOfInputEmitsFarewell(t *testing.T) {
	provider := testutil.NewMockProvider("stub-model")
	var out strings.Builder

	session := NewSession(New(provider, testutil.NewMockSearchProvider()), strings.NewReader(""), &out)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), Farewell) {
		t.Error("farewell missing after end of input")
	}
}

func TestSessionSkipsBlankLines(t *testing.T) {
	provider := testutil.NewMockProvider("stub-model")
	var out strings.Builder

	session := NewSession(New(provider, testutil.NewMockSearchProvider()), strings.NewReader("\n   \nbye\n"), &out)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.DecideCalls != 0 {
		t.Errorf("blank lines triggered %d model calls", provider.DecideCalls)
	}
}

func TestSessionCustomExitToken(t *testing.T) {
	provider := testutil.NewMockProvider("stub-model")
	var out strings.Builder

	session := NewSession(New(provider, testutil.NewMockSearchProvider()), strings.NewReader("quit\n"), &out,
		WithExitToken("quit"))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.DecideCalls != 0 {
		t.Errorf("custom exit token triggered %d model calls", provider.DecideCalls)
	}
	if !strings.Contains(out.String(), "Type 'quit' to exit") {
		t.Error("greeting does not name the custom exit token")
	}
}

func TestSessionPersistsTranscript(t *testing.T) {
	store, err := storage.NewTranscriptStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create transcript store: %v", err)
	}

	provider := testutil.NewMockProvider("stub-model").
		DecideToolCall("clarify_request", map[string]any{"question": "Which brand?"})
	var out strings.Builder

	session := NewSession(New(provider, testutil.NewMockSearchProvider()), strings.NewReader("shoes please\nbye\n"), &out,
		WithTranscriptStore(store, "openrouter"))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transcripts, err := store.List()
	if err != nil {
		t.Fatalf("failed to list transcripts: %v", err)
	}
	if len(transcripts) != 1 {
		t.Fatalf("expected 1 transcript, got %d", len(transcripts))
	}
	if transcripts[0].Provider != "openrouter" {
		t.Errorf("expected provider %q, got %q", "openrouter", transcripts[0].Provider)
	}
	if transcripts[0].TurnCount != 3 {
		t.Errorf("expected 3 persisted turns, got %d", transcripts[0].TurnCount)
	}
	if transcripts[0].Model != "stub-model" {
		t.Errorf("expected model %q, got %q", "stub-model", transcripts[0].Model)
	}
}
