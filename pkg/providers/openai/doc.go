// Package openai implements the OpenAI chat completions adapter. It converts
// between the normalized provider types and the OpenAI wire format, and works
// against any OpenAI-compatible endpoint via a configurable base URL.
package openai
