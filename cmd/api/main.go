package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anantgangwal/ai-voice-bot/internal/api/router"
	appconfig "github.com/anantgangwal/ai-voice-bot/internal/config"
	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/internal/booking"
	"github.com/anantgangwal/ai-voice-bot/internal/conversation"
	"github.com/anantgangwal/ai-voice-bot/internal/http/handlers"
	"github.com/anantgangwal/ai-voice-bot/internal/session"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

func main() {
	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting ai-voice-bot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Identity and sessions
	verifier := auth.NewGoogleVerifier(cfg.GoogleClientID)
	sessions := session.NewStore(0)

	// Booking webhook dispatcher
	dispatcher := booking.NewDispatcher(cfg.BookingWebhookURL, cfg.BookingWebhookTimeout, logger)
	if !dispatcher.Configured() {
		logger.Warn("booking webhook not configured; directives will be skipped")
	}

	// Conversation engine: each session gets its own provider instance.
	engine := conversation.NewEngine(func() conversation.Responder {
		return conversation.NewResponder(ctx, cfg, logger)
	}, dispatcher, logger)
	logger.Info("serving sessions", "provider", engine.ProviderName())

	// Handlers
	chatHandler := handlers.NewChatHandler(engine, sessions, cfg.SessionCookieName, logger)
	authHandler := handlers.NewAuthHandler(verifier, sessions, cfg.SessionCookieName, logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		AuthHandler:        authHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
