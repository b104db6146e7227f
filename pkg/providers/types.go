package providers

import "time"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reasons, normalized across providers.
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonContentFilter = "content_filter"
)

// Message represents a single message in a conversation.
type Message struct {
	// Role identifies the message sender (system, user, assistant).
	Role string `json:"role"`

	// Content is the message text content.
	Content string `json:"content"`
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used.
	TotalTokens int `json:"total_tokens"`
}

// CompletionRequest represents a provider-agnostic completion request.
// It is transformed to the provider-specific wire format by each adapter.
type CompletionRequest struct {
	// Model is the model identifier (e.g., "gpt-4o-mini").
	Model string `json:"model"`

	// Messages is the conversation, in order.
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 to 2.0).
	Temperature float64 `json:"temperature,omitempty"`

	// MaxTokens is the maximum number of tokens to generate. Zero means
	// provider default.
	MaxTokens int `json:"max_tokens,omitempty"`

	// JSONObject forces the provider to emit a single JSON object.
	JSONObject bool `json:"-"`
}

// CompletionResponse represents a provider-agnostic completion response,
// normalized from the provider-specific format.
type CompletionResponse struct {
	// ID is the unique response identifier.
	ID string `json:"id"`

	// Model is the model that generated the response.
	Model string `json:"model"`

	// Content is the first choice's message content. Empty when the
	// provider returned no choices.
	Content string `json:"content"`

	// FinishReason indicates why generation stopped.
	FinishReason string `json:"finish_reason"`

	// Usage contains token consumption information.
	Usage TokenUsage `json:"usage"`

	// Created is the Unix timestamp when the response was created.
	Created int64 `json:"created"`
}

// ProviderHealth tracks the health status of a provider.
type ProviderHealth struct {
	// IsHealthy indicates whether the provider is currently healthy.
	IsHealthy bool

	// LastCheck is the timestamp of the last health update.
	LastCheck time.Time

	// LastError is the most recent error encountered (nil if healthy).
	LastError error

	// ConsecutiveFailures counts sequential failures.
	ConsecutiveFailures int

	// LastSuccessfulRequest is the timestamp of the last successful request.
	LastSuccessfulRequest time.Time

	// TotalRequests is the total number of requests sent to this provider.
	TotalRequests int64

	// FailedRequests is the total number of failed requests.
	FailedRequests int64
}

// ProviderConfig contains configuration for a single provider instance.
type ProviderConfig struct {
	// Name is the provider identifier (e.g., "openai").
	Name string

	// BaseURL is the API endpoint base URL.
	BaseURL string

	// APIKey is the bearer credential.
	APIKey string

	// APIKeyFn, when set, supplies the bearer credential at request time
	// instead of APIKey. Lets a config reload rotate the credential
	// without rebuilding the provider.
	APIKeyFn func() string

	// Timeout is the request timeout duration.
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long idle connections are kept.
	IdleConnTimeout time.Duration
}
