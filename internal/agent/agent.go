// Package agent wraps the externally hosted language model behind a small
// invoke boundary. The model decides whether and which of the declared tools
// to call; this package only owns the capability table and the call loop.
package agent

import "context"

// Role values for conversation turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one (role, text) pair of the conversation sent to the model.
type Turn struct {
	Role    string
	Content string
}

// Client is the agent boundary: a single blocking round trip per chat turn.
type Client interface {
	Invoke(ctx context.Context, turns []Turn, tools *Toolset) (string, error)
}
