package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/internal/booking"
	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

// ErrEmptyQuestion is returned for blank questions; a client error.
var ErrEmptyQuestion = errors.New("conversation: question is empty")

// ErrGenerationFailed is returned when the upstream provider could not
// produce a reply; a server error, safe to re-submit.
var ErrGenerationFailed = errors.New("conversation: failed to generate a response")

// schedulingKeywords trigger identity augmentation: an authenticated
// caller asking about any of these gets their verified name/email prepended
// so the model never has to ask for them.
var schedulingKeywords = []string{
	"book", "schedule", "appointment", "interview", "meeting",
	"slot", "call", "connect", "talk",
}

// ChatResult is the assembled outcome of one exchange.
type ChatResult struct {
	Response string
	Booking  *booking.Outcome
}

// Engine runs the chat pipeline: augment, generate, extract the booking
// directive, normalize it, dispatch it. Every caller session owns its own
// Responder, so transcripts never bleed across sessions, and each slot is
// serialized by its own lock.
type Engine struct {
	newResponder func() Responder
	dispatcher   *booking.Dispatcher
	logger       *logging.Logger

	mu    sync.Mutex
	slots map[string]*sessionSlot

	providerName string
}

type sessionSlot struct {
	mu        sync.Mutex
	responder Responder
}

// NewEngine creates an engine. newResponder is invoked once per session and
// again on every reset; dispatcher may be unconfigured, which skips the
// webhook leg entirely.
func NewEngine(newResponder func() Responder, dispatcher *booking.Dispatcher, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{
		newResponder: newResponder,
		dispatcher:   dispatcher,
		logger:       logger,
		slots:        make(map[string]*sessionSlot),
		providerName: newResponder().Name(),
	}
}

// ProviderName reports which backend new sessions are served by.
func (e *Engine) ProviderName() string { return e.providerName }

func (e *Engine) slot(sessionID string) *sessionSlot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.slots[sessionID]
	if !ok {
		s = &sessionSlot{responder: e.newResponder()}
		e.slots[sessionID] = s
	}
	return s
}

// Chat answers one question for one session. ident is nil for anonymous
// callers. Returns ErrEmptyQuestion or ErrGenerationFailed for the two
// terminal failures; every later stage degrades instead of failing.
func (e *Engine) Chat(ctx context.Context, sessionID string, ident *auth.Identity, question string) (*ChatResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	prompt := question
	if ident != nil && hasSchedulingIntent(question) {
		prompt = fmt.Sprintf("[User Info: Name: %s, Email: %s] %s", ident.Name, ident.Email, question)
	}

	s := e.slot(sessionID)
	s.mu.Lock()
	answer, err := s.responder.Respond(ctx, prompt)
	s.mu.Unlock()
	if err != nil {
		e.logger.Error("llm generation failed", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	text, directive := booking.ExtractDirective(answer)
	if directive == nil {
		return &ChatResult{Response: text}, nil
	}

	normalized := booking.Normalize(*directive, ident)
	outcome := e.dispatcher.Dispatch(ctx, normalized)
	switch {
	case outcome == nil:
		bookingDispatchTotal.WithLabelValues("skipped").Inc()
		e.logger.Warn("booking directive found but no webhook configured",
			"session_id", sessionID, "email", normalized.Email)
	case outcome.Status == booking.OutcomeError:
		bookingDispatchTotal.WithLabelValues("error").Inc()
		e.logger.Error("booking dispatch failed",
			"session_id", sessionID, "error", outcome.Error)
	default:
		bookingDispatchTotal.WithLabelValues("success").Inc()
		e.logger.Info("booking dispatched",
			"session_id", sessionID, "email", normalized.Email,
			"start", normalized.Start, "timezone", normalized.Timezone)
	}

	return &ChatResult{Response: text, Booking: outcome}, nil
}

// Reset discards the session's responder; the next question starts a brand
// new conversation.
func (e *Engine) Reset(sessionID string) {
	s := e.slot(sessionID)
	s.mu.Lock()
	s.responder = e.newResponder()
	s.mu.Unlock()
}

func hasSchedulingIntent(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range schedulingKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
