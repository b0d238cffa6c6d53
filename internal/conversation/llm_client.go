// Package conversation holds the chat pipeline: upstream LLM clients,
// provider selection, the bounded conversation transcript, and the engine
// that turns questions into replies and booking dispatches.
package conversation

import "context"

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one role-tagged transcript entry.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TokenUsage reports upstream token accounting when the provider exposes it.
type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// LLMRequest is a provider-agnostic completion request. Messages carry the
// full transcript including the leading system entry.
type LLMRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int32
	Temperature float32
}

// LLMResponse is a provider-agnostic completion result.
type LLMResponse struct {
	Text       string
	Usage      TokenUsage
	StopReason string
}

// LLMClient is the single capability every upstream provider implements.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
