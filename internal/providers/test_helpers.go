package providers

import (
	"testing"
	"time"

	"kineticmind/guidance/pkg/providers"
)

// TestConfig returns a test provider configuration.
func TestConfig(name string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:                name,
		BaseURL:             "http://localhost:8080",
		APIKey:              "test-key",
		Timeout:             5 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestConfigWithURL returns a test config with a specific base URL.
func TestConfigWithURL(name, baseURL string) providers.ProviderConfig {
	config := TestConfig(name)
	config.BaseURL = baseURL
	return config
}

// TestMessage creates a test message.
func TestMessage(role, content string) providers.Message {
	return providers.Message{
		Role:    role,
		Content: content,
	}
}

// TestCompletionRequest creates a test completion request.
func TestCompletionRequest(model string, messages ...providers.Message) *providers.CompletionRequest {
	return &providers.CompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
		JSONObject:  true,
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorType fails the test if err is not of the expected type.
func AssertErrorType(t *testing.T, err error, expectedType interface{}) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	switch expectedType.(type) {
	case *providers.TimeoutError:
		if _, ok := err.(*providers.TimeoutError); !ok {
			t.Fatalf("expected TimeoutError, got %T: %v", err, err)
		}
	case *providers.ProviderError:
		if _, ok := err.(*providers.ProviderError); !ok {
			t.Fatalf("expected ProviderError, got %T: %v", err, err)
		}
	case *providers.ParseError:
		if _, ok := err.(*providers.ParseError); !ok {
			t.Fatalf("expected ParseError, got %T: %v", err, err)
		}
	case *providers.ConfigError:
		if _, ok := err.(*providers.ConfigError); !ok {
			t.Fatalf("expected ConfigError, got %T: %v", err, err)
		}
	default:
		t.Fatalf("unknown error type: %T", expectedType)
	}
}

// AssertEqual fails the test if got != expected.
func AssertEqual(t *testing.T, got, expected interface{}) {
	t.Helper()
	if got != expected {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

// AssertTrue fails the test if condition is false.
func AssertTrue(t *testing.T, condition bool, message string) {
	t.Helper()
	if !condition {
		t.Fatalf("assertion failed: %s", message)
	}
}

// AssertFalse fails the test if condition is true.
func AssertFalse(t *testing.T, condition bool, message string) {
	t.Helper()
	if condition {
		t.Fatalf("assertion failed: %s", message)
	}
}

// AssertContains fails the test if haystack doesn't contain needle.
func AssertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	found := false
	for i := 0; i <= len(haystack)-len(needle); i++ {
		if haystack[i:i+len(needle)] == needle {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

// WaitForCondition waits for a condition to become true within a timeout.
func WaitForCondition(t *testing.T, timeout time.Duration, condition func() bool, message string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if condition() {
			return
		}

		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %s: %s", timeout, message)
		}

		<-ticker.C
	}
}
