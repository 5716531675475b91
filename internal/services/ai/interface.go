// File: internal/services/ai/interface.go
package ai

import "context"

// Message roles used across the dispatch layer. Adapters remap them to
// each vendor's vocabulary during normalization.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is the provider-agnostic shape of one conversation turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result is the uniform outcome of a generation call. ImageURL is set
// only for image-generation requests.
type Result struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Provider is the shared capability every vendor adapter implements:
// exactly one outbound call per invocation, no retries, and an empty
// remote result reported as a failure rather than an empty success.
type Provider interface {
	Generate(ctx context.Context, messages []ChatMessage, cfg GenerationConfig) (*Result, error)
}
