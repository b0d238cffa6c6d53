package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/internal/booking"
	"github.com/anantgangwal/ai-voice-bot/internal/conversation"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

// ChatService is the slice of the conversation engine the handler needs.
type ChatService interface {
	Chat(ctx context.Context, sessionID string, ident *auth.Identity, question string) (*conversation.ChatResult, error)
	Reset(sessionID string)
	ProviderName() string
}

// ChatHandler serves /api/chat, /api/reset and /api/health.
type ChatHandler struct {
	service    ChatService
	sessions   IdentityStore
	cookieName string
	logger     *logging.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(service ChatService, sessions IdentityStore, cookieName string, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if cookieName == "" {
		cookieName = "session_id"
	}
	return &ChatHandler{
		service:    service,
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Success  bool             `json:"success"`
	Response string           `json:"response,omitempty"`
	Booking  *booking.Outcome `json:"booking,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// HandleChat answers one question for the caller's session.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := ensureSession(w, r, h.cookieName)
	var ident *auth.Identity
	if h.sessions != nil {
		if stored, ok := h.sessions.Get(sessionID); ok {
			ident = stored
		}
	}

	result, err := h.service.Chat(r.Context(), sessionID, ident, req.Question)
	switch {
	case errors.Is(err, conversation.ErrEmptyQuestion):
		writeError(w, http.StatusBadRequest, "No question provided")
		return
	case errors.Is(err, conversation.ErrGenerationFailed):
		writeError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	case err != nil:
		h.logger.Error("chat request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:  true,
		Response: result.Response,
		Booking:  result.Booking,
	})
}

// HandleReset discards the caller's conversation and starts a new one.
func (h *ChatHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := ensureSession(w, r, h.cookieName)
	h.service.Reset(sessionID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleHealth reports liveness and the active provider.
func (h *ChatHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"llm_type": h.service.ProviderName(),
	})
}
