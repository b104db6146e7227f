package providers

import "context"

// Provider is the interface the guidance handler calls to reach the upstream
// completion API. All methods accept a context.Context for cancellation and
// timeout control; implementations must return promptly when the context is
// cancelled.
//
// Example usage:
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
//
//	req := &providers.CompletionRequest{
//	    Model: "gpt-4o-mini",
//	    Messages: []providers.Message{
//	        {Role: providers.RoleSystem, Content: systemPrompt},
//	        {Role: providers.RoleUser, Content: userPrompt},
//	    },
//	}
//	resp, err := provider.SendCompletion(ctx, req)
type Provider interface {
	// SendCompletion sends a single completion request to the upstream API.
	// The call is one attempt: there is no retry, and any non-success
	// upstream status is returned as a typed error carrying the upstream
	// response body text.
	SendCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// HealthCheck sends a lightweight request to verify the upstream is
	// reachable and the credential is accepted. Returns nil when healthy.
	HealthCheck(ctx context.Context) error

	// GetName returns the provider's configured name.
	GetName() string

	// IsHealthy returns the current health status as tracked across
	// requests and health checks.
	IsHealthy() bool

	// GetHealth returns detailed health information.
	GetHealth() ProviderHealth

	// Close releases pooled connections. The provider must not be used
	// after Close.
	Close() error
}
