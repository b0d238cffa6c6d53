package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/internal/session"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

type fakeVerifier struct {
	ident      *auth.Identity
	err        error
	configured bool
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ident, nil
}

func (f *fakeVerifier) Configured() bool { return f.configured }

func newAuthHandler(v TokenVerifier, sessions IdentityStore) *AuthHandler {
	return NewAuthHandler(v, sessions, "session_id", logging.New("error", "json"))
}

func TestGoogleLoginEstablishesSession(t *testing.T) {
	sessions := session.NewStore(0)
	v := &fakeVerifier{configured: true, ident: &auth.Identity{Name: "Jane Doe", Email: "jane@example.com"}}
	h := newAuthHandler(v, sessions)

	rec := postJSON(t, h.HandleGoogleLogin, "/auth/google", `{"credential":"tok"}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v", cookies)
	}
	ident, ok := sessions.Get(cookies[0].Value)
	if !ok || ident.Email != "jane@example.com" {
		t.Fatalf("stored identity = %+v, ok = %v", ident, ok)
	}
}

func TestGoogleLoginInvalidToken(t *testing.T) {
	h := newAuthHandler(&fakeVerifier{configured: true, err: auth.ErrInvalidToken}, session.NewStore(0))

	rec := postJSON(t, h.HandleGoogleLogin, "/auth/google", `{"credential":"bad"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGoogleLoginNotConfigured(t *testing.T) {
	h := newAuthHandler(&fakeVerifier{configured: false}, session.NewStore(0))

	rec := postJSON(t, h.HandleGoogleLogin, "/auth/google", `{"credential":"tok"}`, nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGoogleLoginMissingCredential(t *testing.T) {
	h := newAuthHandler(&fakeVerifier{configured: true}, session.NewStore(0))

	rec := postJSON(t, h.HandleGoogleLogin, "/auth/google", `{}`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMeAuthenticated(t *testing.T) {
	sessions := session.NewStore(0)
	sessions.Set("abc123", &auth.Identity{Name: "Jane Doe", Email: "jane@example.com"})
	h := newAuthHandler(&fakeVerifier{configured: true}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "abc123"})
	rec := httptest.NewRecorder()
	h.HandleMe(rec, req)

	var body struct {
		Authenticated bool           `json:"authenticated"`
		User          *auth.Identity `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Authenticated || body.User == nil || body.User.Email != "jane@example.com" {
		t.Fatalf("body = %+v", body)
	}
}

func TestMeAnonymous(t *testing.T) {
	h := newAuthHandler(&fakeVerifier{configured: true}, session.NewStore(0))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	h.HandleMe(rec, req)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Authenticated {
		t.Fatal("anonymous request reported as authenticated")
	}
}

func TestLogoutClearsIdentity(t *testing.T) {
	sessions := session.NewStore(0)
	sessions.Set("abc123", &auth.Identity{Email: "jane@example.com"})
	h := newAuthHandler(&fakeVerifier{configured: true}, sessions)

	rec := postJSON(t, h.HandleLogout, "/auth/logout", "", &http.Cookie{Name: "session_id", Value: "abc123"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok := sessions.Get("abc123"); ok {
		t.Fatal("identity should be cleared after logout")
	}
}
