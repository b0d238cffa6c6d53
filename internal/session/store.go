// Package session holds authenticated identities for browser sessions.
// Storage is in-memory and single-process; identities do not survive a
// restart.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
)

// Store maps session IDs to verified identities.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

type entry struct {
	identity *auth.Identity
	expires  time.Time
}

const defaultTTL = 24 * time.Hour

// NewStore creates an empty session store. ttl <= 0 selects the default of
// 24 hours.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// NewSessionID creates a random session identifier.
func NewSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// Get returns the identity for a session, if authenticated and unexpired.
func (s *Store) Get(sessionID string) (*auth.Identity, bool) {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.identity, true
}

// Set replaces the identity for a session wholesale.
func (s *Store) Set(sessionID string, ident *auth.Identity) {
	s.mu.Lock()
	s.entries[sessionID] = entry{identity: ident, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

// Clear removes the identity for a session.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
}
