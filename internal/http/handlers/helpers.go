// Package handlers exposes the chat and auth HTTP surface.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/internal/session"
)

// IdentityStore is the per-caller session boundary the handlers write to
// and the chat pipeline reads from.
type IdentityStore interface {
	Get(sessionID string) (*auth.Identity, bool)
	Set(sessionID string, ident *auth.Identity)
	Clear(sessionID string)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// ensureSession returns the caller's session ID, minting a cookie when the
// request carries none.
func ensureSession(w http.ResponseWriter, r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := session.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
