package proxy

import (
	"errors"
	"log/slog"
	"net/http"

	"kineticmind/guidance/pkg/providers"
	"kineticmind/guidance/pkg/proxy/types"
)

// HandleProviderError maps an upstream provider error to the corresponding
// wire error response.
//
// A non-success upstream status becomes 502 with the upstream body text as
// the detail. A timeout or cancellation becomes 504. A response that could
// not be decoded is still an upstream failure, so it maps to 502 as well.
func HandleProviderError(w http.ResponseWriter, err error) {
	var timeoutErr *providers.TimeoutError
	if errors.As(err, &timeoutErr) {
		slog.Warn("upstream timeout",
			"provider", timeoutErr.Provider,
			"timeout", timeoutErr.Timeout,
		)
		WriteError(w, http.StatusGatewayTimeout, types.NewUpstreamTimeoutError())
		return
	}

	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		slog.Warn("upstream error",
			"provider", provErr.Provider,
			"status", provErr.StatusCode,
		)
		WriteError(w, http.StatusBadGateway, types.NewUpstreamError(provErr.Message))
		return
	}

	var parseErr *providers.ParseError
	if errors.As(err, &parseErr) {
		slog.Error("upstream response unparseable",
			"provider", parseErr.Provider,
			"error", parseErr.Cause,
		)
		WriteError(w, http.StatusBadGateway, types.NewUpstreamError(parseErr.Error()))
		return
	}

	slog.Error("unexpected provider error", "error", err)
	WriteError(w, http.StatusInternalServerError, types.NewInternalError())
}
