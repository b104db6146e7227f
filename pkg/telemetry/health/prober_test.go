package health

import (
	"context"
	"net/http"
	"testing"
	"time"

	internal "kineticmind/guidance/internal/providers"
	"kineticmind/guidance/pkg/providers/openai"
)

func newTestProber(t *testing.T, mock *internal.MockServer, schedule string) *Prober {
	t.Helper()

	provider, err := openai.NewProvider(internal.TestConfigWithURL("openai", mock.URL()))
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	t.Cleanup(func() { provider.Close() })

	return NewProber(provider, nil, schedule, time.Second)
}

func TestProber_Probe(t *testing.T) {
	mock := internal.NewMockServer()
	defer mock.Close()
	mock.SetResponse("/models", internal.MockResponse{
		StatusCode: http.StatusOK,
		Body:       map[string]interface{}{"object": "list"},
	})

	p := newTestProber(t, mock, "")

	if err := p.Probe(context.Background()); err != nil {
		t.Errorf("Probe() error = %v", err)
	}
	if mock.GetRequestCount() != 1 {
		t.Errorf("probe calls = %d, want 1", mock.GetRequestCount())
	}
}

func TestProber_Probe_UpstreamDown(t *testing.T) {
	mock := internal.NewMockServer()
	defer mock.Close()
	mock.SetResponse("/models", internal.MockServerError())

	p := newTestProber(t, mock, "")

	if err := p.Probe(context.Background()); err == nil {
		t.Error("Probe() should fail against a 500 upstream")
	}
}

func TestProber_EmptyScheduleDisabled(t *testing.T) {
	mock := internal.NewMockServer()
	defer mock.Close()

	p := newTestProber(t, mock, "")

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if p.IsRunning() {
		t.Error("prober should stay stopped with empty schedule")
	}
}

func TestProber_InvalidSchedule(t *testing.T) {
	mock := internal.NewMockServer()
	defer mock.Close()

	p := newTestProber(t, mock, "not a cron expression")

	if err := p.Start(context.Background()); err == nil {
		t.Error("Start() should reject an invalid schedule")
	}
}

func TestProber_StartStop(t *testing.T) {
	mock := internal.NewMockServer()
	defer mock.Close()
	mock.SetResponse("/models", internal.MockResponse{
		StatusCode: http.StatusOK,
		Body:       map[string]interface{}{"object": "list"},
	})

	p := newTestProber(t, mock, "@every 1h")

	ctx, cancel := context.WithCancel(context.Background())
	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !p.IsRunning() {
		t.Fatal("prober should be running")
	}

	cancel()
	internal.WaitForCondition(t, 2*time.Second, func() bool {
		return !p.IsRunning()
	}, "prober should stop on context cancellation")
}
