package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internal "kineticmind/guidance/internal/providers"
	"kineticmind/guidance/pkg/providers/openai"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("status = %q, want ok", status.Status)
	}
	if status.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestReadinessHandler(t *testing.T) {
	mock := internal.NewMockServer()
	defer mock.Close()
	mock.SetResponse("/chat/completions", internal.MockServerError())

	provider, err := openai.NewProvider(internal.TestConfigWithURL("openai", mock.URL()))
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer provider.Close()

	h := NewReadinessHandler(provider)

	// Fresh provider starts healthy.
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 while healthy", rec.Code)
	}

	// Three consecutive upstream failures flip the provider unhealthy.
	for i := 0; i < 3; i++ {
		provider.SendCompletion(req.Context(), internal.TestCompletionRequest("gpt-4o-mini"))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 while unhealthy", rec.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if status.Status != "unavailable" {
		t.Errorf("status = %q, want unavailable", status.Status)
	}
}
