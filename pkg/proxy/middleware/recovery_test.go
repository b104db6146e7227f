package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoveryMiddleware_Panic(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	})

	handler := RecoveryMiddleware(next)

	req := httptest.NewRequest(http.MethodPost, "/v1/guidance", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Internal Server Error") {
		t.Errorf("body = %s", body)
	}
	if strings.Contains(body, "handler exploded") {
		t.Error("panic detail leaked to client")
	}
}

func TestRecoveryMiddleware_NormalFlow(t *testing.T) {
	handler := RecoveryMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "handled" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
