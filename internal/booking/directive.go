// Package booking turns model-emitted scheduling directives into normalized
// automation-webhook payloads.
package booking

// Directive is the structured meeting request the model appends after the
// booking marker. Field names are the wire contract with the automation
// webhook.
type Directive struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
	Notes    string `json:"notes"`
}
