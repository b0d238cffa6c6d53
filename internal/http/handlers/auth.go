package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

// TokenVerifier validates a third-party identity assertion.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Identity, error)
	Configured() bool
}

// AuthHandler serves Google Sign-In session endpoints.
type AuthHandler struct {
	verifier   TokenVerifier
	sessions   IdentityStore
	cookieName string
	logger     *logging.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(verifier TokenVerifier, sessions IdentityStore, cookieName string, logger *logging.Logger) *AuthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if cookieName == "" {
		cookieName = "session_id"
	}
	return &AuthHandler{
		verifier:   verifier,
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

type loginRequest struct {
	Credential string `json:"credential"`
}

// HandleGoogleLogin verifies a Google ID token and binds the identity to
// the caller's session.
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.verifier.Configured() {
		writeError(w, http.StatusServiceUnavailable, "google sign-in is not configured")
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil || req.Credential == "" {
		writeError(w, http.StatusBadRequest, "credential is required")
		return
	}

	ident, err := h.verifier.Verify(r.Context(), req.Credential)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, "google sign-in is not configured")
			return
		}
		h.logger.Warn("identity token rejected", "error", err)
		writeError(w, http.StatusUnauthorized, "invalid identity token")
		return
	}

	sessionID := ensureSession(w, r, h.cookieName)
	h.sessions.Set(sessionID, ident)
	h.logger.Info("user authenticated", "email", ident.Email)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": ident})
}

// HandleMe reports the caller's authenticated identity, if any.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.cookieName)
	if err != nil || c.Value == "" {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	ident, ok := h.sessions.Get(c.Value)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "user": ident})
}

// HandleLogout clears the caller's session identity.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.cookieName); err == nil && c.Value != "" {
		h.sessions.Clear(c.Value)
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func decodeJSON(r *http.Request, v any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	return json.NewDecoder(r.Body).Decode(v)
}
