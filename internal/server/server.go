// Package server exposes the chat gateway over HTTP and WebSocket.
//
// Responsibilities:
//   - Serve the chat endpoint and its WebSocket counterpart
//   - Serve pricing estimates and the plan catalog
//   - Capture demo requests into the leads store
//   - Expose health and Prometheus metrics endpoints
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/admybrand/adbot-gateway/internal/config"
	"github.com/admybrand/adbot-gateway/internal/gateway"
	"github.com/admybrand/adbot-gateway/internal/leads"
)

// Server represents the AdBot gateway server.
type Server struct {
	config  *config.Config
	log     *zap.Logger
	gateway *gateway.Gateway
	leads   leads.Store

	// HTTP server
	httpServer *http.Server

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// State
	mu      sync.RWMutex
	running bool
}

// NewServer creates a new gateway server.
func NewServer(cfg *config.Config, log *zap.Logger, gw *gateway.Gateway, store leads.Store) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if gw == nil {
		return nil, fmt.Errorf("gateway cannot be nil")
	}
	if store == nil {
		return nil, fmt.Errorf("leads store cannot be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		config:  cfg,
		log:     log,
		gateway: gw,
		leads:   store,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start starts the server.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.running = true
	s.mu.Unlock()

	mux := http.NewServeMux()
	s.registerHandlers(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.log.Info("starting HTTP server",
			zap.String("host", s.config.Server.Host),
			zap.Int("port", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", zap.Error(err))
		}
	}()

	s.log.Info("AdBot gateway started",
		zap.Int("quota_max_requests", s.config.Quota.MaxRequests),
		zap.Int("quota_window_seconds", s.config.Quota.WindowSeconds))

	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return fmt.Errorf("server is not running")
	}
	s.running = false
	s.mu.Unlock()

	s.log.Info("stopping AdBot gateway")

	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error("error shutting down HTTP server", zap.Error(err))
		}
	}

	s.cancel()
	s.wg.Wait()

	s.log.Info("AdBot gateway stopped")
	return nil
}

// Wait blocks until the server is stopped.
func (s *Server) Wait() {
	<-s.ctx.Done()
}

// IsRunning returns whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// registerHandlers registers HTTP handlers.
func (s *Server) registerHandlers(mux *http.ServeMux) {
	// Chat
	mux.HandleFunc("/api/v1/chat", s.handleChat)
	mux.HandleFunc("/api/v1/chat/stream", s.handleChatStream)

	// Pricing
	mux.HandleFunc("/api/v1/pricing/estimate", s.handlePricingEstimate)
	mux.HandleFunc("/api/v1/pricing/plans", s.handlePricingPlans)

	// Leads
	mux.HandleFunc("/api/v1/demo-request", s.handleDemoRequest)

	// Operational
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
}
