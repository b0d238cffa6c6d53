package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anantgangwal/ai-voice-bot/pkg/logging"
)

// Outcome statuses.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Outcome reports how the automation webhook handled a directive.
type Outcome struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

const (
	defaultDispatchTimeout = 10 * time.Second
	maxResponseBytes       = 1 << 20
)

// Dispatcher posts normalized directives to the configured automation
// webhook. Delivery is best-effort, at-most-once: no retries, no queueing.
type Dispatcher struct {
	url    string
	client *http.Client
	logger *logging.Logger
}

// NewDispatcher creates a dispatcher for the given webhook URL. An empty
// URL disables dispatch. timeout <= 0 selects the 10-second default.
func NewDispatcher(url string, timeout time.Duration, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &Dispatcher{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Configured reports whether a webhook endpoint is set.
func (d *Dispatcher) Configured() bool {
	return d != nil && d.url != ""
}

// Dispatch sends the directive once. A nil outcome means no endpoint is
// configured and no call was attempted. Transport failures come back as an
// error outcome, never as a Go error: the chat request must survive a dead
// webhook.
func (d *Dispatcher) Dispatch(ctx context.Context, dir Directive) *Outcome {
	if !d.Configured() {
		return nil
	}

	body, err := json.Marshal(dir)
	if err != nil {
		return &Outcome{Status: OutcomeError, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return &Outcome{Status: OutcomeError, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("booking webhook unreachable", "error", err)
		return &Outcome{Status: OutcomeError, Error: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Outcome{Status: OutcomeError, Error: err.Error()}
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		d.logger.Warn("booking webhook returned non-success status",
			"status", resp.StatusCode,
		)
	}

	// Surface whatever the webhook said. n8n replies with JSON on the happy
	// path but plain text on some error pages; wrap the latter so callers
	// always see a structured payload.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return &Outcome{Status: OutcomeSuccess, Payload: json.RawMessage(trimmed)}
	}
	wrapped, _ := json.Marshal(map[string]string{"status": "success", "raw": string(trimmed)})
	return &Outcome{Status: OutcomeSuccess, Payload: wrapped}
}
