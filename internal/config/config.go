package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	// LLM provider credentials, checked in this order by the selector.
	GroqAPIKey   string
	GroqModel    string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	// Generation parameters shared by all providers.
	MaxResponseTokens int
	Temperature       float64

	// SystemPrompt overrides the built-in persona prompt when set.
	SystemPrompt string

	// Booking automation webhook (n8n). Empty disables dispatch.
	BookingWebhookURL     string
	BookingWebhookTimeout time.Duration

	// Google Sign-In audience. Empty disables authentication.
	GoogleClientID string

	CORSAllowedOrigins []string
	SessionCookieName  string
}

// Load reads configuration from environment variables. A local .env file is
// honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
		GroqModel:    getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		MaxResponseTokens: getEnvAsInt("MAX_RESPONSE_TOKENS", 800),
		Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.7),

		SystemPrompt: getEnv("SYSTEM_PROMPT", ""),

		BookingWebhookURL:     getEnv("N8N_WEBHOOK_URL", ""),
		BookingWebhookTimeout: getEnvAsDuration("N8N_WEBHOOK_TIMEOUT", 10*time.Second),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "session_id"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
