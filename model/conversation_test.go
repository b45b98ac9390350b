package model

import (
	"reflect"
	"testing"
)

func TestConversationOrdering(t *testing.T) {
	conv := NewConversation()
	conv.AppendUser("I'm looking for shirts")
	conv.AppendToolResult(ActionSearch, "Here are the products I found: Product 1 (ID: p1)")
	conv.AppendAssistant("Here are the products I found: Product 1 (ID: p1)")

	turns := conv.Snapshot()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}

	expectedRoles := []string{RoleUser, RoleTool, RoleAssistant}
	for i, role := range expectedRoles {
		if turns[i].Role != role {
			t.Errorf("turn %d: expected role %q, got %q", i, role, turns[i].Role)
		}
	}

	if turns[1].ActionName != ActionSearch {
		t.Errorf("expected tool turn action %q, got %q", ActionSearch, turns[1].ActionName)
	}

	for i := 1; i < len(turns); i++ {
		if turns[i].Timestamp.Before(turns[i-1].Timestamp) {
			t.Errorf("turn %d timestamp precedes turn %d", i, i-1)
		}
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	conv := NewConversation()
	conv.AppendUser("hello")
	conv.AppendAssistant("hi")

	first := conv.Snapshot()
	second := conv.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Error("snapshots without intervening append differ")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	conv := NewConversation()
	conv.AppendUser("original")

	snap := conv.Snapshot()
	snap[0].Content = "mutated"

	if conv.Snapshot()[0].Content != "original" {
		t.Error("mutating a snapshot changed conversation history")
	}
}

func TestLen(t *testing.T) {
	conv := NewConversation()
	if conv.Len() != 0 {
		t.Errorf("expected empty conversation, got %d turns", conv.Len())
	}

	conv.AppendUser("one")
	conv.AppendAssistant("two")
	if conv.Len() != 2 {
		t.Errorf("expected 2 turns, got %d", conv.Len())
	}
}
