package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestProviderError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ProviderError
		want []string
	}{
		{
			name: "with status code",
			err: &ProviderError{
				Provider:   "openai",
				StatusCode: 429,
				Message:    "Rate limit exceeded",
			},
			want: []string{"openai", "429", "Rate limit exceeded"},
		},
		{
			name: "without status code",
			err: &ProviderError{
				Provider: "openai",
				Message:  "connection refused",
			},
			want: []string{"openai", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want substring %q", msg, want)
				}
			}
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := &ProviderError{Provider: "openai", Message: "wrapped", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}

	wrapped := fmt.Errorf("request failed: %w", err)
	var pe *ProviderError
	if !errors.As(wrapped, &pe) {
		t.Fatal("errors.As should find ProviderError in chain")
	}
	if pe.Message != "wrapped" {
		t.Errorf("Message = %q, want %q", pe.Message, "wrapped")
	}
}

func TestTimeoutError_Error(t *testing.T) {
	err := &TimeoutError{Provider: "openai", Timeout: 30 * time.Second}

	msg := err.Error()
	if !strings.Contains(msg, "openai") || !strings.Contains(msg, "30s") {
		t.Errorf("Error() = %q, want provider name and timeout", msg)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ParseError{Provider: "openai", RawResponse: "{", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("Error() = %q, want parse error description", err.Error())
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Provider: "openai", Field: "base_url", Message: "base URL is required"}

	msg := err.Error()
	for _, want := range []string{"openai", "base_url", "base URL is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want substring %q", msg, want)
		}
	}
}
