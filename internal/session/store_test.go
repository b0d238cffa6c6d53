package session

import (
	"testing"
	"time"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(0)
	id := NewSessionID()

	if _, ok := s.Get(id); ok {
		t.Fatal("expected empty store to miss")
	}

	s.Set(id, &auth.Identity{Name: "Jane", Email: "jane@x.com"})
	ident, ok := s.Get(id)
	if !ok || ident.Email != "jane@x.com" {
		t.Fatalf("expected stored identity, got %v %v", ident, ok)
	}

	s.Clear(id)
	if _, ok := s.Get(id); ok {
		t.Fatal("expected cleared session to miss")
	}
}

func TestStoreReplacesWholesale(t *testing.T) {
	s := NewStore(0)
	id := NewSessionID()
	s.Set(id, &auth.Identity{Name: "Jane", Email: "jane@x.com", Picture: "p"})
	s.Set(id, &auth.Identity{Name: "Janet", Email: "janet@x.com"})

	ident, _ := s.Get(id)
	if ident.Name != "Janet" || ident.Picture != "" {
		t.Fatalf("expected wholesale replacement, got %+v", ident)
	}
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	id := NewSessionID()
	s.Set(id, &auth.Identity{Email: "jane@x.com"})

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(id); ok {
		t.Fatal("expected expired session to miss")
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Fatal("expected distinct session ids")
	}
	if len(a) != 32 {
		t.Fatalf("expected 32-char hex id, got %d chars", len(a))
	}
}
