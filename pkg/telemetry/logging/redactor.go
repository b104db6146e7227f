package logging

import (
	"log/slog"
	"regexp"
)

// Redactor removes credential material from log attribute values. It covers
// the two secrets this service handles: the upstream API key and the shared
// access secret.
type Redactor struct {
	patterns []*redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Attribute keys whose values are always fully masked regardless of shape.
var sensitiveKeys = map[string]bool{
	"api_key":       true,
	"shared_secret": true,
	"secret":        true,
	"authorization": true,
}

// NewRedactor creates a redactor with the built-in credential patterns.
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []*redactPattern{
			{
				name:        "api_key",
				regex:       regexp.MustCompile(`sk-[a-zA-Z0-9_-]+`),
				replacement: "sk-***",
			},
			{
				name:        "bearer_token",
				regex:       regexp.MustCompile(`Bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
				replacement: "Bearer ***",
			},
		},
	}
}

// RedactString applies all patterns to a string value.
func (r *Redactor) RedactString(s string) string {
	for _, p := range r.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// RedactAttr redacts a single slog attribute. Known-sensitive keys are
// masked outright; other string values pass through the patterns.
func (r *Redactor) RedactAttr(a slog.Attr) slog.Attr {
	if sensitiveKeys[a.Key] {
		return slog.String(a.Key, "***")
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, r.RedactString(a.Value.String()))
	}

	return a
}
