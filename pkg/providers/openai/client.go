package openai

import (
	"context"
	"fmt"
	"log/slog"

	"kineticmind/guidance/pkg/providers"
)

// Provider is the OpenAI chat-completions adapter. It also serves any
// OpenAI-compatible API via a custom base URL.
type Provider struct {
	*providers.HTTPProvider
}

// NewProvider creates a new OpenAI provider instance.
func NewProvider(config providers.ProviderConfig) (*Provider, error) {
	if config.Name == "" {
		config.Name = "openai"
	}

	if config.BaseURL == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "base_url",
			Message:  "base URL is required",
		}
	}

	// The API key is deliberately not validated here: a missing key is a
	// per-request condition surfaced by the handler, not a startup error.

	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 10
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 5
	}

	p := &Provider{
		HTTPProvider: providers.NewHTTPProvider(config),
	}

	slog.Info("OpenAI provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
	)

	return p, nil
}

// SendCompletion sends a chat completion request and returns the normalized
// response. One attempt, no retry.
func (p *Provider) SendCompletion(ctx context.Context, req *providers.CompletionRequest) (*providers.CompletionResponse, error) {
	openaiReq := transformRequest(req)

	url := p.GetConfig().BaseURL + "/chat/completions"

	var openaiResp ChatCompletionResponse
	if err := p.DoJSONRequest(ctx, "POST", url, openaiReq, &openaiResp, p.authHeaders()); err != nil {
		return nil, err
	}

	return transformResponse(&openaiResp), nil
}

// HealthCheck verifies the upstream is reachable by listing models.
func (p *Provider) HealthCheck(ctx context.Context) error {
	url := p.GetConfig().BaseURL + "/models"

	resp, err := p.DoRequest(ctx, "GET", url, nil, p.authHeaders())
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	resp.Body.Close()

	return nil
}

// authHeaders returns the bearer authorization header for upstream calls.
// The credential is read through APIKeyFn when set, so a reloaded key is
// picked up on the next request.
func (p *Provider) authHeaders() map[string]string {
	cfg := p.GetConfig()
	key := cfg.APIKey
	if cfg.APIKeyFn != nil {
		key = cfg.APIKeyFn()
	}

	return map[string]string{
		"Authorization": "Bearer " + key,
	}
}
