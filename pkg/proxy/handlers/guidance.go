package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"kineticmind/guidance/pkg/config"
	"kineticmind/guidance/pkg/guidance"
	"kineticmind/guidance/pkg/providers"
	"kineticmind/guidance/pkg/proxy"
	"kineticmind/guidance/pkg/proxy/middleware"
	"kineticmind/guidance/pkg/proxy/types"
	"kineticmind/guidance/pkg/telemetry/metrics"
)

// GuidanceHandler serves POST /v1/guidance. Processing is strictly linear:
// method gate, credential gate, body parse, prompt assembly, one upstream
// call, verbatim relay of the completion content.
//
// OPTIONS never reaches this handler; the CORS middleware terminates it.
// The shared-secret gate also runs in middleware, before this handler.
type GuidanceHandler struct {
	provider  providers.Provider
	configFn  func() *config.Config
	collector *metrics.Collector
}

// NewGuidanceHandler creates a guidance handler. configFn is called per
// request so config reloads take effect without restarting; collector may
// be nil.
func NewGuidanceHandler(provider providers.Provider, configFn func() *config.Config, collector *metrics.Collector) *GuidanceHandler {
	return &GuidanceHandler{
		provider:  provider,
		configFn:  configFn,
		collector: collector,
	}
}

// ServeHTTP implements http.Handler.
func (h *GuidanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	if r.Method != http.MethodPost {
		h.collector.RecordRequest("invalid", time.Since(start))
		proxy.WriteError(w, http.StatusMethodNotAllowed, types.NewMethodNotAllowedError())
		return
	}

	cfg := h.configFn()

	// The upstream credential is a per-request gate, not a startup check.
	// Without it, fail before any network activity.
	if cfg.Upstream.APIKey == "" {
		slog.ErrorContext(r.Context(), "upstream API key not configured",
			"request_id", requestID,
		)
		h.collector.RecordRequest("error", time.Since(start))
		proxy.WriteError(w, http.StatusInternalServerError, types.NewMissingAPIKeyError())
		return
	}

	req, err := proxy.ParseGuidanceRequest(r)
	if err != nil {
		h.collector.RecordRequest("invalid", time.Since(start))
		proxy.WriteError(w, http.StatusBadRequest, types.NewInvalidJSONError())
		return
	}
	req.ApplyDefaults(cfg.Guidance.DefaultDesiredState, cfg.Guidance.DefaultScore)

	completionReq := &providers.CompletionRequest{
		Model:       cfg.Upstream.Model,
		Temperature: cfg.Upstream.Temperature,
		JSONObject:  true,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: guidance.SystemPrompt},
			{Role: providers.RoleUser, Content: guidance.UserPrompt(req)},
		},
	}

	upstreamStart := time.Now()
	resp, err := h.provider.SendCompletion(r.Context(), completionReq)
	upstreamLatency := time.Since(upstreamStart)

	if err != nil {
		h.recordFailure(err, time.Since(start))
		proxy.HandleProviderError(w, err)
		return
	}

	h.collector.RecordProviderLatency(h.provider.GetName(), cfg.Upstream.Model, upstreamLatency.Seconds())
	h.collector.RecordTokens(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	content := resp.Content
	if content == "" {
		content = "{}"
	}

	if cfg.Guidance.ValidateContent {
		if err := guidance.ValidateContent(content); err != nil {
			slog.WarnContext(r.Context(), "upstream content failed validation",
				"request_id", requestID,
				"error", err,
			)
			h.collector.RecordRequest("upstream_error", time.Since(start))
			proxy.WriteError(w, http.StatusBadGateway, types.NewUpstreamError(err.Error()))
			return
		}
	}

	slog.InfoContext(r.Context(), "guidance request completed",
		"request_id", requestID,
		"model", resp.Model,
		"finish_reason", resp.FinishReason,
		"total_tokens", resp.Usage.TotalTokens,
		"upstream_latency_ms", upstreamLatency.Milliseconds(),
	)

	h.collector.RecordRequest("success", time.Since(start))
	proxy.WriteContent(w, content)
}

// recordFailure classifies a provider error for metrics.
func (h *GuidanceHandler) recordFailure(err error, elapsed time.Duration) {
	name := h.provider.GetName()

	switch err.(type) {
	case *providers.TimeoutError:
		h.collector.RecordRequest("timeout", elapsed)
		h.collector.RecordProviderError(name, "timeout")
	case *providers.ParseError:
		h.collector.RecordRequest("upstream_error", elapsed)
		h.collector.RecordProviderError(name, "parse")
	case *providers.ProviderError:
		h.collector.RecordRequest("upstream_error", elapsed)
		h.collector.RecordProviderError(name, "upstream_status")
	default:
		h.collector.RecordRequest("error", elapsed)
		h.collector.RecordProviderError(name, "unknown")
	}
}
