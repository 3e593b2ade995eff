// Package assistant wraps the hosted generative-language model behind a small
// client interface, with retry, timeout, and deterministic local fallbacks for
// every call. The orchestrator in this package sequences one chat turn end to
// end: intent detection, stress analysis, reply generation, task extraction,
// and store mutations. Without an API key the whole package runs on the local
// heuristics alone.
package assistant

import "context"

// Role tags one side of the model conversation.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one history entry sent to the model.
type Turn struct {
	Role Role
	Text string
}

// Request describes a single completion call.
type Request struct {
	System      string
	History     []Turn
	Prompt      string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Client produces a completion for a request. Implementations must honor the
// context deadline.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
