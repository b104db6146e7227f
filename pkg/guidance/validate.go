package guidance

import (
	"encoding/json"
	"fmt"
)

// ContentError describes why an upstream content string failed schema
// validation. It is only produced when content validation is enabled.
type ContentError struct {
	// Field is the offending field, when known.
	Field string

	// Message is a human-readable description.
	Message string

	// Cause is the underlying decode error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ContentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("guidance content invalid: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("guidance content invalid: %s", e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ContentError) Unwrap() error {
	return e.Cause
}

// ValidateContent checks that an upstream content string parses as a Result
// with known enum values. The gateway relays content verbatim by default;
// this check only runs when guidance.validate_content is enabled.
func ValidateContent(content string) error {
	var res Result
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return &ContentError{
			Message: "not a JSON guidance object",
			Cause:   err,
		}
	}

	if res.Reflection == "" {
		return &ContentError{Field: "reflection", Message: "must be a non-empty string"}
	}
	if len(res.Plan) == 0 {
		return &ContentError{Field: "plan", Message: "must be a non-empty array"}
	}
	if !res.Recommendation.Protocol.IsValid() {
		return &ContentError{
			Field:   "recommendation.protocol",
			Message: fmt.Sprintf("unknown protocol %q", res.Recommendation.Protocol),
		}
	}
	if res.Recommendation.ReframeMantra == "" {
		return &ContentError{Field: "recommendation.reframe_mantra", Message: "must be a non-empty string"}
	}
	if !res.Recommendation.StateAfter.IsValid() {
		return &ContentError{
			Field:   "recommendation.state_after",
			Message: fmt.Sprintf("unknown state %q", res.Recommendation.StateAfter),
		}
	}

	return nil
}
