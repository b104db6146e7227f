package proxy

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"kineticmind/guidance/pkg/proxy/types"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError writes an error response with the given status code.
func WriteError(w http.ResponseWriter, status int, errResp *types.ErrorResponse) {
	WriteJSON(w, status, errResp)
}

// WriteContent relays a completion content string verbatim as the response
// body. The content is already JSON-encoded text by contract, so it is
// written without re-encoding.
func WriteContent(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(content)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
