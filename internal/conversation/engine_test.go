package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
	"github.com/anantgangwal/ai-voice-bot/internal/booking"
)

// scriptedClient returns canned completions and records the requests it saw.
type scriptedClient struct {
	replies  []string
	err      error
	requests []LLMRequest
}

func (c *scriptedClient) Complete(_ context.Context, req LLMRequest) (LLMResponse, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return LLMResponse{}, c.err
	}
	reply := c.replies[0]
	if len(c.replies) > 1 {
		c.replies = c.replies[1:]
	}
	return LLMResponse{Text: reply}, nil
}

func newTestEngine(client LLMClient, dispatcher *booking.Dispatcher) *Engine {
	factory := func() Responder {
		return NewProvider("test", client, "persona", 800, 0.7)
	}
	return NewEngine(factory, dispatcher, nil)
}

func TestChatEmptyQuestion(t *testing.T) {
	e := newTestEngine(&scriptedClient{replies: []string{"hi"}}, booking.NewDispatcher("", 0, nil))
	_, err := e.Chat(context.Background(), "s1", nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestChatGenerationFailure(t *testing.T) {
	client := &scriptedClient{err: errors.New("quota exceeded")}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))

	_, err := e.Chat(context.Background(), "s1", nil, "hello")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestChatPlainAnswerPassesThrough(t *testing.T) {
	client := &scriptedClient{replies: []string{"I love building AI systems."}}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))

	res, err := e.Chat(context.Background(), "s1", nil, "what do you do?")
	require.NoError(t, err)
	assert.Equal(t, "I love building AI systems.", res.Response)
	assert.Nil(t, res.Booking)
}

func TestChatAugmentsSchedulingQuestionsForAuthenticatedCallers(t *testing.T) {
	client := &scriptedClient{replies: []string{"Sure, what time works?"}}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))
	ident := &auth.Identity{Name: "Jane", Email: "jane@x.com"}

	_, err := e.Chat(context.Background(), "s1", ident, "I want to book a call")
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	last := client.requests[0].Messages[len(client.requests[0].Messages)-1]
	assert.True(t, strings.HasPrefix(last.Content, "[User Info: Name: Jane, Email: jane@x.com] "), "got %q", last.Content)
	assert.True(t, strings.HasSuffix(last.Content, "I want to book a call"))
}

func TestChatDoesNotAugmentAnonymousOrOffTopicQuestions(t *testing.T) {
	client := &scriptedClient{replies: []string{"ok", "ok"}}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))

	_, err := e.Chat(context.Background(), "s1", nil, "book a meeting")
	require.NoError(t, err)
	_, err = e.Chat(context.Background(), "s1", &auth.Identity{Name: "J", Email: "j@x.com"}, "tell me about your degree")
	require.NoError(t, err)

	for _, req := range client.requests {
		last := req.Messages[len(req.Messages)-1]
		assert.NotContains(t, last.Content, "[User Info:")
	}
}

func TestChatBookingEndToEndIdentityWins(t *testing.T) {
	reply := "All set, see you then!\n" + booking.Marker +
		` {"name":"Model Guess","email":"wrong@x.com","start":"2025-11-27T10:00","end":"2025-11-27T10:30","timezone":"IST","notes":"Intro call"}`

	var posted booking.Directive
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := &scriptedClient{replies: []string{reply}}
	e := newTestEngine(client, booking.NewDispatcher(srv.URL, 0, nil))
	ident := &auth.Identity{Name: "Jane", Email: "jane@x.com"}

	res, err := e.Chat(context.Background(), "s1", ident, "book a call")
	require.NoError(t, err)

	assert.Equal(t, "All set, see you then!", res.Response)
	require.NotNil(t, res.Booking)
	assert.Equal(t, booking.OutcomeSuccess, res.Booking.Status)

	assert.Equal(t, "Jane", posted.Name)
	assert.Equal(t, "jane@x.com", posted.Email)
	assert.Equal(t, "2025-11-27T10:00:00", posted.Start)
	assert.Equal(t, "Asia/Kolkata", posted.Timezone)
}

func TestChatMalformedDirectiveLeaksRawReply(t *testing.T) {
	reply := "Done. " + booking.Marker + " {broken"
	client := &scriptedClient{replies: []string{reply}}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))

	res, err := e.Chat(context.Background(), "s1", nil, "book a slot please")
	require.NoError(t, err)
	assert.Equal(t, reply, res.Response)
	assert.Nil(t, res.Booking)
}

func TestChatDispatchErrorStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	reply := "Booked!\n" + booking.Marker + ` {"name":"J","email":"j@x.com","start":"2025-11-27T10:00","end":"2025-11-27T10:30","timezone":"UTC","notes":"x"}`
	client := &scriptedClient{replies: []string{reply}}
	e := newTestEngine(client, booking.NewDispatcher(deadURL, 0, nil))

	res, err := e.Chat(context.Background(), "s1", nil, "book a call")
	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.Equal(t, booking.OutcomeError, res.Booking.Status)
	assert.Equal(t, "Booked!", res.Response)
}

func TestChatSessionsDoNotShareTranscripts(t *testing.T) {
	client := &scriptedClient{replies: []string{"ok"}}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))

	_, err := e.Chat(context.Background(), "session-a", nil, "first question")
	require.NoError(t, err)
	_, err = e.Chat(context.Background(), "session-b", nil, "second question")
	require.NoError(t, err)

	// Each session's request carries only its own history: system + one user
	// entry on the first exchange.
	require.Len(t, client.requests, 2)
	assert.Len(t, client.requests[1].Messages, 2)
}

func TestResetStartsFreshConversation(t *testing.T) {
	client := &scriptedClient{replies: []string{"ok"}}
	e := newTestEngine(client, booking.NewDispatcher("", 0, nil))

	_, err := e.Chat(context.Background(), "s1", nil, "question one")
	require.NoError(t, err)
	e.Reset("s1")
	_, err = e.Chat(context.Background(), "s1", nil, "question two")
	require.NoError(t, err)

	last := client.requests[len(client.requests)-1]
	assert.Len(t, last.Messages, 2, "post-reset request must carry only system + new question")
}

func TestChatFailedGenerationLeavesUserEntryAppended(t *testing.T) {
	client := &scriptedClient{err: errors.New("boom")}
	factory := func() Responder { return NewProvider("test", client, "persona", 800, 0.7) }
	e := NewEngine(factory, booking.NewDispatcher("", 0, nil), nil)

	_, err := e.Chat(context.Background(), "s1", nil, "hello")
	require.Error(t, err)

	slot := e.slot("s1")
	provider := slot.responder.(*Provider)
	msgs := provider.Transcript().Snapshot()
	require.Len(t, msgs, 2)
	assert.Equal(t, ChatRoleUser, msgs[1].Role)
}

func TestProviderNameReported(t *testing.T) {
	e := newTestEngine(&scriptedClient{replies: []string{"ok"}}, nil)
	assert.Equal(t, "test", e.ProviderName())
}
