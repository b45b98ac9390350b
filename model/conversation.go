package model

import "time"

// Conversation accumulates the turns of a single session in occurrence order.
//
// The log is append-only: turns are never mutated or removed once added, and
// the model never sees turns out of order. A Conversation is owned by exactly
// one agent session and is not safe for concurrent use.
type Conversation struct {
	turns []Turn
}

// NewConversation returns an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// AppendUser appends a user turn.
func (c *Conversation) AppendUser(text string) {
	c.append(Turn{Role: RoleUser, Content: text})
}

// AppendAssistant appends an assistant turn.
func (c *Conversation) AppendAssistant(text string) {
	c.append(Turn{Role: RoleAssistant, Content: text})
}

// AppendToolResult appends the rendered result of an executed action.
func (c *Conversation) AppendToolResult(actionName, result string) {
	c.append(Turn{Role: RoleTool, Content: result, ActionName: actionName})
}

func (c *Conversation) append(t Turn) {
	t.Timestamp = time.Now()
	c.turns = append(c.turns, t)
}

// Snapshot returns a copy of the turns so far. Repeated calls without an
// intervening append return equal sequences; callers may not mutate history
// through the returned slice.
func (c *Conversation) Snapshot() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of turns appended so far.
func (c *Conversation) Len() int {
	return len(c.turns)
}
