package booking

import (
	"strings"

	"github.com/anantgangwal/ai-voice-bot/internal/auth"
)

// timezoneAliases maps the abbreviations the model tends to emit to IANA
// zone identifiers. Anything else is assumed to be IANA-form already.
var timezoneAliases = map[string]string{
	"IST": "Asia/Kolkata",
	"PST": "America/Los_Angeles",
	"EST": "America/New_York",
	"GMT": "UTC",
	"UTC": "UTC",
}

// Normalize canonicalizes a parsed directive: start/end gain seconds when
// the model sent minute precision, timezone abbreviations become IANA
// identifiers, and notes lose quotes and line breaks. The identity override
// runs unconditionally last: a verified identity is the sole source of
// truth for who is booking, whatever the model asserted.
func Normalize(d Directive, ident *auth.Identity) Directive {
	d.Start = ensureSeconds(d.Start)
	d.End = ensureSeconds(d.End)
	d.Timezone = canonicalTimezone(d.Timezone)
	d.Notes = sanitizeNotes(d.Notes)

	if ident != nil {
		if ident.Name != "" {
			d.Name = ident.Name
		}
		if ident.Email != "" {
			d.Email = ident.Email
		}
	}
	return d
}

// ensureSeconds appends ":00" to a YYYY-MM-DDTHH:MM value. Values that
// already carry seconds or an offset, or that have no date/time separator,
// pass through unchanged.
func ensureSeconds(v string) string {
	datePart, timePart, found := strings.Cut(v, "T")
	if !found {
		return v
	}
	if strings.Count(timePart, ":") == 1 {
		return datePart + "T" + timePart + ":00"
	}
	return v
}

func canonicalTimezone(tz string) string {
	if mapped, ok := timezoneAliases[strings.ToUpper(strings.TrimSpace(tz))]; ok {
		return mapped
	}
	return tz
}

// sanitizeNotes enforces the single-line, quote-free contract the model is
// prompted to follow but cannot be trusted to keep.
func sanitizeNotes(notes string) string {
	notes = strings.ReplaceAll(notes, `"`, "")
	notes = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(notes)
	return strings.TrimSpace(notes)
}
