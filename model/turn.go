package model

import "time"

// Turn roles. Tool turns carry the result of an executed action back into
// the conversation; they are never shown to the user directly.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

// Turn is one immutable entry in a conversation history.
type Turn struct {
	Role       string
	Content    string
	ActionName string // tool turns only: the action that produced this result
	Timestamp  time.Time
}
