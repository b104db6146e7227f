package proxy

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"kineticmind/guidance/pkg/guidance"
)

// MaxRequestBodySize caps inbound request bodies at 1MB. Guidance payloads
// are small; anything larger is abuse or a mistake.
const MaxRequestBodySize = 1 << 20

// ErrInvalidBody is returned when the request body cannot be decoded into a
// guidance request. Oversized and mistyped bodies are treated the same as
// malformed JSON.
var ErrInvalidBody = errors.New("invalid request body")

// ParseGuidanceRequest decodes the request body into a guidance request.
// Decoding is strict about field types but tolerant of unknown fields, and
// defaults are not applied here.
func ParseGuidanceRequest(r *http.Request) (*guidance.Request, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		return nil, ErrInvalidBody
	}
	if len(body) > MaxRequestBodySize {
		return nil, ErrInvalidBody
	}

	var req guidance.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, ErrInvalidBody
	}

	return &req, nil
}
