package conversation

import (
	"context"
	"strings"
)

// OfflineResponder serves canned first-person answers when no upstream
// credentials are available. It ignores conversation history entirely.
type OfflineResponder struct{}

var offlineAnswers = []struct {
	keyword string
	answer  string
}{
	{"life", "I was born and brought up in Indore, and my journey so far has been about curiosity and growth."},
	{"superpower", "I'd say my biggest superpower is adaptability. I learn fast and adjust to challenges quickly."},
	{"grow", "I'm focusing on growing in AI, software, finance, and real estate - all areas that excite me."},
	{"boundaries", "Whenever I fear being mediocre, I push harder - I believe real growth begins there."},
}

const offlineDeflection = "That's a great question - I'd like to reflect on that a bit more."

// Name identifies the offline fallback.
func (OfflineResponder) Name() string { return "offline" }

// Respond matches topic keywords against the lowercased question and
// returns the canned answer, or a generic deflection. Never fails.
func (OfflineResponder) Respond(_ context.Context, question string) (string, error) {
	q := strings.ToLower(question)
	for _, canned := range offlineAnswers {
		if strings.Contains(q, canned.keyword) {
			return canned.answer, nil
		}
	}
	return offlineDeflection, nil
}
