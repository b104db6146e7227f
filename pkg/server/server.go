package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"kineticmind/guidance/pkg/config"
	"kineticmind/guidance/pkg/providers"
	"kineticmind/guidance/pkg/proxy/handlers"
	"kineticmind/guidance/pkg/proxy/middleware"
	"kineticmind/guidance/pkg/telemetry/metrics"
)

// Server is the HTTP server for the guidance service.
type Server struct {
	configFn     func() *config.Config
	httpServer   *http.Server
	provider     providers.Provider
	collector    *metrics.Collector
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new guidance server. configFn is called per request
// for reload-sensitive settings; collector may be nil to disable metrics.
func NewServer(configFn func() *config.Config, provider providers.Provider, collector *metrics.Collector) *Server {
	return &Server{
		configFn:     configFn,
		provider:     provider,
		collector:    collector,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	cfg := s.configFn()
	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           cfg.Proxy.ListenAddress,
		Handler:        handler,
		ReadTimeout:    cfg.Proxy.ReadTimeout,
		WriteTimeout:   cfg.Proxy.WriteTimeout,
		IdleTimeout:    cfg.Proxy.IdleTimeout,
		MaxHeaderBytes: cfg.Proxy.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting guidance server",
			"address", cfg.Proxy.ListenAddress,
			"model", cfg.Upstream.Model,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		cfg := s.configFn()
		slog.Info("initiating graceful shutdown", "timeout", cfg.Proxy.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Proxy.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("guidance server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	cfg := s.configFn()
	mux := http.NewServeMux()

	guidanceHandler := handlers.NewGuidanceHandler(s.provider, s.configFn, s.collector)
	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewReadinessHandler(s.provider)

	mux.Handle("/v1/guidance", guidanceHandler)
	mux.Handle("/health", healthHandler)
	mux.Handle("/ready", readyHandler)

	if s.collector != nil && cfg.Telemetry.Metrics.Enabled {
		mux.Handle(cfg.Telemetry.Metrics.Path, s.collector.Handler())
	}

	// Middleware chain, innermost to outermost. CORS sits outside the
	// secret gate so preflight requests bypass authentication, and the
	// secret is read through configFn so reloads take effect live. The
	// secret gate only applies to POST, so other methods reach the
	// handlers' method gates. RequestID wraps Logging so the logger sees
	// the ID.
	var handler http.Handler = mux

	handler = middleware.TimeoutMiddleware(cfg.Proxy.WriteTimeout)(handler)

	handler = middleware.SecretMiddleware(func() string {
		return s.configFn().Auth.SharedSecret
	})(handler)

	handler = middleware.CORSMiddleware(s.convertCORSConfig(&cfg.Proxy.CORS))(handler)

	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.RequestIDMiddleware(handler)

	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// convertCORSConfig converts config.CORSConfig to middleware.CORSConfig.
func (s *Server) convertCORSConfig(cors *config.CORSConfig) *middleware.CORSConfig {
	return &middleware.CORSConfig{
		AllowedOrigins: cors.AllowedOrigins,
		AllowedMethods: cors.AllowedMethods,
		AllowedHeaders: cors.AllowedHeaders,
		MaxAge:         cors.MaxAge,
	}
}
