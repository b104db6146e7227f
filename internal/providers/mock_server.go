package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// MockServer is a mock HTTP server for testing provider adapters. It counts
// received requests and captures request bodies so tests can assert both that
// an upstream call happened and that no call happened at all.
type MockServer struct {
	server       *httptest.Server
	responses    map[string]MockResponse
	requestCount int
	lastBody     []byte
	lastHeaders  http.Header
	mu           sync.Mutex
}

// MockResponse defines a mock response configuration.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration
	Headers    map[string]string
}

// NewMockServer creates a new mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]MockResponse),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))

	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets a mock response for a specific endpoint.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.responses[path] = response
}

// GetRequestCount returns the number of requests received.
func (ms *MockServer) GetRequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.requestCount
}

// ResetRequestCount resets the request counter.
func (ms *MockServer) ResetRequestCount() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.requestCount = 0
}

// LastRequestBody returns the body of the most recent request.
func (ms *MockServer) LastRequestBody() []byte {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.lastBody
}

// LastRequestHeader returns a header value from the most recent request.
func (ms *MockServer) LastRequestHeader(key string) string {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.lastHeaders == nil {
		return ""
	}
	return ms.lastHeaders.Get(key)
}

// handler handles incoming HTTP requests.
func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.requestCount++
	ms.lastBody = body
	ms.lastHeaders = r.Header.Clone()
	response, ok := ms.responses[r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}

	w.WriteHeader(response.StatusCode)

	if response.Body != nil {
		switch v := response.Body.(type) {
		case string:
			_, _ = w.Write([]byte(v))
		case []byte:
			_, _ = w.Write(v)
		default:
			_ = json.NewEncoder(w).Encode(response.Body)
		}
	}
}

// MockCompletionResponse creates a mock chat completion response.
func MockCompletionResponse(content string, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

// MockEmptyChoicesResponse creates a completion response with no choices.
func MockEmptyChoicesResponse(model string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-456",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]interface{}{},
		"usage": map[string]interface{}{
			"prompt_tokens":     10,
			"completion_tokens": 0,
			"total_tokens":      10,
		},
	}
}

// MockErrorResponse creates a mock error response with the OpenAI error
// envelope as the body.
func MockErrorResponse(statusCode int, message string) MockResponse {
	body := map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    "invalid_request_error",
			"code":    statusCode,
		},
	}

	return MockResponse{
		StatusCode: statusCode,
		Body:       body,
	}
}

// MockAuthError creates a 401 authentication error response.
func MockAuthError() MockResponse {
	return MockErrorResponse(http.StatusUnauthorized, "Invalid API key")
}

// MockRateLimitError creates a 429 rate limit error response.
func MockRateLimitError(retryAfter int) MockResponse {
	response := MockErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded")
	response.Headers = map[string]string{
		"Retry-After": fmt.Sprintf("%d", retryAfter),
	}
	return response
}

// MockTimeoutError creates a slow response to simulate timeout.
func MockTimeoutError(delay time.Duration) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       MockCompletionResponse("too late", "gpt-4o-mini"),
		Delay:      delay,
	}
}

// MockServerError creates a 500 internal server error response.
func MockServerError() MockResponse {
	return MockErrorResponse(http.StatusInternalServerError, "Internal server error")
}

// ExpectHeader checks if a request has a specific header value.
func ExpectHeader(r *http.Request, key, value string) error {
	actual := r.Header.Get(key)
	if !strings.Contains(actual, value) {
		return fmt.Errorf("header %q mismatch: expected %q, got %q", key, value, actual)
	}
	return nil
}
