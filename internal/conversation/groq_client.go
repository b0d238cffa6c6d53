package conversation

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqLLMClient implements LLMClient against Groq's OpenAI-compatible API.
// Groq is the preferred backend for its inference speed.
type GroqLLMClient struct {
	client  *openai.Client
	modelID string
}

// NewGroqLLMClient creates a new Groq client.
func NewGroqLLMClient(apiKey, modelID string) (*GroqLLMClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("conversation: groq api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "llama-3.1-8b-instant"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqLLMClient{
		client:  openai.NewClientWithConfig(cfg),
		modelID: modelID,
	}, nil
}

// Complete sends the transcript to Groq and returns the reply.
func (c *GroqLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	return chatCompletion(ctx, c.client, c.modelID, "groq", req)
}
