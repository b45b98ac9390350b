package model

import "errors"

// Failure classes surfaced by the decision step. The agent loop downgrades
// all of these to a user-visible error reply; none of them end a session.
var (
	// ErrSchemaViolation reports a tool call naming an unknown action or
	// missing a required parameter.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrModelUnavailable reports a network, auth, or service failure from
	// the model backend.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrModelTimeout reports a model call that exceeded its deadline.
	ErrModelTimeout = errors.New("model timeout")
)
