package proxy

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kineticmind/guidance/pkg/providers"
)

func TestHandleProviderError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "upstream status error relays body as detail",
			err:        &providers.ProviderError{Provider: "openai", StatusCode: 429, Message: "rate limited"},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"OpenAI error","detail":"rate limited"}`,
		},
		{
			name:       "timeout",
			err:        &providers.TimeoutError{Provider: "openai", Timeout: time.Second},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"error":"OpenAI timeout"}`,
		},
		{
			name:       "parse error is an upstream failure",
			err:        &providers.ParseError{Provider: "openai", RawResponse: "{", Cause: errors.New("eof")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleProviderError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" {
				if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
					t.Errorf("body = %s, want %s", got, tt.wantBody)
				}
			}
		})
	}
}

func TestHandleProviderError_WrappedError(t *testing.T) {
	wrapped := &providers.ProviderError{Provider: "openai", StatusCode: 500, Message: "upstream down"}

	rec := httptest.NewRecorder()
	HandleProviderError(rec, wrapError(wrapped))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 through errors.As", rec.Code)
	}
}

func wrapError(err error) error {
	return &wrappedErr{err}
}

type wrappedErr struct{ inner error }

func (w *wrappedErr) Error() string { return "wrapped: " + w.inner.Error() }
func (w *wrappedErr) Unwrap() error { return w.inner }
