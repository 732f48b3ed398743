package main

// Package main is the entry point for the AdBot gateway server.
//
// Responsibilities:
//   - Load and validate configuration from YAML and environment variables
//   - Build the structured logger
//   - Wire the upstream generation client, quota tracker, and knowledge base
//     into the chat gateway
//   - Open the leads store
//   - Start the HTTP/WebSocket server and serve until SIGINT/SIGTERM
//   - Implement graceful shutdown
//
// Request Flow:
//  1. HTTP/WebSocket chat request reaches the gateway
//  2. Gateway admits the request against the fixed-window quota
//  3. Admitted requests make a single upstream generation call
//  4. Throttled or failed requests answer from the local knowledge base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/admybrand/adbot-gateway/internal/config"
	"github.com/admybrand/adbot-gateway/internal/gateway"
	"github.com/admybrand/adbot-gateway/internal/knowledge"
	"github.com/admybrand/adbot-gateway/internal/leads"
	"github.com/admybrand/adbot-gateway/internal/llm/gemini"
	"github.com/admybrand/adbot-gateway/internal/logging"
	"github.com/admybrand/adbot-gateway/internal/quota"
	"github.com/admybrand/adbot-gateway/internal/server"
)

func main() {
	configPath := flag.String("config", "/etc/adbot/config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// Load and validate configuration.
	mgr, err := config.NewConfigManager(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create config manager: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Validate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cfg := mgr.Get(ctx)

	// Build the logger.
	log, err := logging.NewLogger(&logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Wire the chat gateway.
	upstream, err := gemini.NewClient(
		cfg.Upstream.Endpoint,
		cfg.Upstream.APIKey,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatal("failed to create upstream client", zap.Error(err))
	}

	tracker := quota.NewTracker(
		cfg.Quota.MaxRequests,
		time.Duration(cfg.Quota.WindowSeconds)*time.Second,
	)
	responder := knowledge.NewResponder(time.Duration(cfg.Fallback.DelayMS) * time.Millisecond)

	gw, err := gateway.New(upstream, tracker, responder, log)
	if err != nil {
		log.Fatal("failed to create gateway", zap.Error(err))
	}

	// Open the leads store.
	store, err := leads.NewSQLiteStore(cfg.Leads.DBPath)
	if err != nil {
		log.Fatal("failed to open leads store", zap.Error(err))
	}
	defer store.Close()

	// Create and start the server.
	srv, err := server.NewServer(cfg, log, gw, store)
	if err != nil {
		log.Fatal("failed to create server", zap.Error(err))
	}
	if err := srv.Start(); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}

	// Wait for shutdown signal.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("received shutdown signal")

	if err := srv.Stop(); err != nil {
		log.Error("error stopping server", zap.Error(err))
		os.Exit(1)
	}
}
