// Package logging configures structured slog logging for the guidance
// service. Loggers write JSON or text per configuration, and all attributes
// pass through a credential redactor so API keys and shared secrets never
// appear in log output.
package logging
