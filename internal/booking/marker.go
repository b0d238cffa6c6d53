package booking

import (
	"encoding/json"
	"strings"
)

// Marker delimits conversational text from the machine-readable booking
// payload in a model reply.
const Marker = "[[BOOK_INTERVIEW]]"

// ExtractDirective splits a raw model reply into user-facing text and the
// optional directive following the marker.
//
// The payload is located heuristically: the substring between the first '{'
// and the last '}' after the marker, or the whole tail when no brace pair
// exists. A payload that fails to decode never fails the request — the
// caller gets the original reply back untrimmed, marker and all, with no
// directive.
func ExtractDirective(raw string) (string, *Directive) {
	idx := strings.Index(raw, Marker)
	if idx < 0 {
		return raw, nil
	}

	text := strings.TrimSpace(raw[:idx])
	tail := raw[idx+len(Marker):]

	payload := tail
	if open := strings.Index(tail, "{"); open >= 0 {
		if end := strings.LastIndex(tail, "}"); end > open {
			payload = tail[open : end+1]
		}
	}

	var d Directive
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return raw, nil
	}
	return text, &d
}
