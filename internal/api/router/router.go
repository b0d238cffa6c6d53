// Package router wires the HTTP surface onto a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/anantgangwal/ai-voice-bot/internal/http/handlers"
	httpmiddleware "github.com/anantgangwal/ai-voice-bot/internal/http/middleware"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *handlers.ChatHandler
	AuthHandler        *handlers.AuthHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/chat", cfg.ChatHandler.HandleChat)
		api.Post("/reset", cfg.ChatHandler.HandleReset)
		api.Get("/health", cfg.ChatHandler.HandleHealth)
	})

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/google", cfg.AuthHandler.HandleGoogleLogin)
		auth.Get("/me", cfg.AuthHandler.HandleMe)
		auth.Post("/logout", cfg.AuthHandler.HandleLogout)
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
