package types

// ErrorResponse is the wire shape for all error conditions. Detail is only
// present when an upstream body is relayed.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Detail carries the upstream response body text, when applicable.
	Detail string `json:"detail,omitempty"`
}

// Error messages. Clients match on these strings, so they are part of the
// contract and must not change.
const (
	// MessageMethodNotAllowed is returned for any method other than POST
	// and OPTIONS.
	MessageMethodNotAllowed = "Method Not Allowed"

	// MessageUnauthorized is returned when the shared secret is configured
	// and the request's secret header is missing or mismatched.
	MessageUnauthorized = "Unauthorized"

	// MessageMissingAPIKey is returned when the upstream credential is not
	// configured. No upstream call is attempted in that case.
	MessageMissingAPIKey = "Missing OPENAI_API_KEY"

	// MessageInvalidJSON is returned when the request body cannot be
	// decoded.
	MessageInvalidJSON = "Invalid JSON body"

	// MessageUpstreamError is returned when the upstream responds with a
	// non-success status. Detail carries the upstream body.
	MessageUpstreamError = "OpenAI error"

	// MessageUpstreamTimeout is returned when the upstream call exceeds
	// the configured timeout.
	MessageUpstreamTimeout = "OpenAI timeout"

	// MessageInternalError is returned for unexpected server failures.
	MessageInternalError = "Internal Server Error"
)

// NewMethodNotAllowedError creates the 405 error response.
func NewMethodNotAllowedError() *ErrorResponse {
	return &ErrorResponse{Error: MessageMethodNotAllowed}
}

// NewUnauthorizedError creates the 401 error response.
func NewUnauthorizedError() *ErrorResponse {
	return &ErrorResponse{Error: MessageUnauthorized}
}

// NewMissingAPIKeyError creates the 500 missing-credential error response.
func NewMissingAPIKeyError() *ErrorResponse {
	return &ErrorResponse{Error: MessageMissingAPIKey}
}

// NewInvalidJSONError creates the 400 error response.
func NewInvalidJSONError() *ErrorResponse {
	return &ErrorResponse{Error: MessageInvalidJSON}
}

// NewUpstreamError creates the 502 error response carrying the upstream
// body text.
func NewUpstreamError(detail string) *ErrorResponse {
	return &ErrorResponse{Error: MessageUpstreamError, Detail: detail}
}

// NewUpstreamTimeoutError creates the 504 error response.
func NewUpstreamTimeoutError() *ErrorResponse {
	return &ErrorResponse{Error: MessageUpstreamTimeout}
}

// NewInternalError creates the generic 500 error response.
func NewInternalError() *ErrorResponse {
	return &ErrorResponse{Error: MessageInternalError}
}
