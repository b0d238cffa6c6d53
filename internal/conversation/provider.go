package conversation

import (
	"context"
	"fmt"
	"time"
)

// Responder produces one assistant reply per question.
type Responder interface {
	Name() string
	Respond(ctx context.Context, question string) (string, error)
}

// Provider wraps an LLMClient with the conversation transcript it owns.
// One Provider serves one conversation; Reset is modeled by constructing a
// fresh Provider.
type Provider struct {
	name        string
	client      LLMClient
	transcript  *Transcript
	maxTokens   int32
	temperature float32
}

// NewProvider creates a provider with an empty transcript seeded from the
// system prompt.
func NewProvider(name string, client LLMClient, systemPrompt string, maxTokens int32, temperature float32) *Provider {
	return &Provider{
		name:        name,
		client:      client,
		transcript:  NewTranscript(systemPrompt),
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Name identifies the upstream backend ("groq", "openai", "gemini").
func (p *Provider) Name() string { return p.name }

// Transcript exposes the owned history.
func (p *Provider) Transcript() *Transcript { return p.transcript }

// Respond appends the question to the transcript, completes against the
// upstream model, and appends the answer. When the upstream call fails the
// user entry stays appended and no assistant entry is written.
func (p *Provider) Respond(ctx context.Context, question string) (string, error) {
	p.transcript.Append(ChatRoleUser, question)

	start := time.Now()
	resp, err := p.client.Complete(ctx, LLMRequest{
		Messages:    p.transcript.Snapshot(),
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		llmLatency.WithLabelValues(p.name, "error").Observe(time.Since(start).Seconds())
		return "", fmt.Errorf("conversation: %s completion: %w", p.name, err)
	}
	llmLatency.WithLabelValues(p.name, "ok").Observe(time.Since(start).Seconds())
	if resp.Usage.TotalTokens > 0 {
		llmTokensTotal.WithLabelValues(p.name).Add(float64(resp.Usage.TotalTokens))
	}

	p.transcript.Append(ChatRoleAssistant, resp.Text)
	return resp.Text, nil
}
