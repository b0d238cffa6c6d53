package conversation

import "sync"

// maxTranscriptEntries bounds the history sent upstream: the pinned system
// entry plus the 19 most recent exchanges.
const maxTranscriptEntries = 20

// Transcript is the ordered message history for one conversation. Entry 0
// is the system persona message and is never evicted; older user/assistant
// entries are dropped once the ceiling is hit. Safe for concurrent use.
type Transcript struct {
	mu       sync.Mutex
	messages []ChatMessage
}

// NewTranscript creates a transcript seeded with the system persona entry.
func NewTranscript(systemPrompt string) *Transcript {
	return &Transcript{
		messages: []ChatMessage{{Role: ChatRoleSystem, Content: systemPrompt}},
	}
}

// Append adds a message, trimming oldest non-system entries past the
// ceiling.
func (t *Transcript) Append(role, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.messages = append(t.messages, ChatMessage{Role: role, Content: content})
	if len(t.messages) > maxTranscriptEntries {
		trimmed := make([]ChatMessage, 0, maxTranscriptEntries)
		trimmed = append(trimmed, t.messages[0])
		trimmed = append(trimmed, t.messages[len(t.messages)-(maxTranscriptEntries-1):]...)
		t.messages = trimmed
	}
}

// Snapshot returns a copy of the current messages.
func (t *Transcript) Snapshot() []ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len reports the current entry count.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}
