package conversation

import (
	"context"

	"github.com/anantgangwal/ai-voice-bot/internal/config"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

// NewResponder picks the best available provider for the configured
// credentials: Groq first (fast inference), then OpenAI, then Gemini, then
// the offline fallback. Selection never fails — a provider whose client
// cannot be constructed is skipped, and with no credentials at all the
// offline responder answers from canned material.
//
// Each call returns a Responder with a fresh, empty transcript; callers
// re-invoke it to reset a conversation.
func NewResponder(ctx context.Context, cfg *config.Config, logger *logging.Logger) Responder {
	if logger == nil {
		logger = logging.Default()
	}

	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}
	maxTokens := int32(cfg.MaxResponseTokens)
	temperature := float32(cfg.Temperature)

	if cfg.GroqAPIKey != "" {
		client, err := NewGroqLLMClient(cfg.GroqAPIKey, cfg.GroqModel)
		if err == nil {
			logger.Info("llm provider selected", "provider", "groq", "model", cfg.GroqModel)
			return NewProvider("groq", client, prompt, maxTokens, temperature)
		}
		logger.Warn("groq client unavailable, trying next provider", "error", err)
	}

	if cfg.OpenAIAPIKey != "" {
		client, err := NewOpenAILLMClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err == nil {
			logger.Info("llm provider selected", "provider", "openai", "model", cfg.OpenAIModel)
			return NewProvider("openai", client, prompt, maxTokens, temperature)
		}
		logger.Warn("openai client unavailable, trying next provider", "error", err)
	}

	if cfg.GeminiAPIKey != "" {
		client, err := NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err == nil {
			logger.Info("llm provider selected", "provider", "gemini", "model", cfg.GeminiModel)
			return NewProvider("gemini", client, prompt, maxTokens, temperature)
		}
		logger.Warn("gemini client unavailable, trying next provider", "error", err)
	}

	logger.Warn("no llm credentials configured, using offline fallback")
	return OfflineResponder{}
}
