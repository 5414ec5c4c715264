package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"aether/internal/advice"
	"aether/internal/config"
	"aether/internal/core"
	"aether/internal/events"
	apphttp "aether/internal/http"
	"aether/internal/ledger"
	"aether/internal/services"
	"aether/internal/voice"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting aether server")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ledger
	store := ledger.New(core.Money{Cents: cfg.StartingBalanceCents})
	if cfg.SeedDemoData {
		store.Seed()
		logger.Info("Seeded demo transactions", "count", len(store.List()))
	}

	// Event publishing is optional; without a broker URL transactions
	// are only recorded locally.
	var publisher services.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP publisher", "error", err)
			os.Exit(1)
		}
		publisher = p
		logger.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	txns := services.NewTransactionService(store, publisher)
	defer txns.Close()

	// Advice
	provider, err := advice.New(ctx, advice.Config{
		APIKey:        cfg.GeminiAPIKey,
		Model:         cfg.GeminiModel,
		Timeout:       cfg.AdviceTimeout,
		FallbackDelay: cfg.AdviceFallbackDelay,
	})
	if err != nil {
		logger.Error("Failed to initialize advice provider", "error", err)
		os.Exit(1)
	}
	if !provider.Configured() {
		logger.Info("Advice provider unconfigured - serving offline fallback")
	}
	advisor := advice.NewAdvisor(provider)
	snapshots := store.Subscribe()
	advisor.Refresh(ctx, store.Snapshot())

	// Voice capture simulation
	captures := voice.NewManager(txns, voice.Config{
		ListenDelay:  cfg.VoiceListenDelay,
		ProcessDelay: cfg.VoiceProcessDelay,
		SessionTTL:   cfg.VoiceSessionTTL,
	})

	srv := apphttp.NewServer(":"+cfg.Port, store, txns, advisor, captures)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB
	srv.StartCacheCleanup(cfg.CacheCleanupInterval)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := advisor.Run(ctx, snapshots); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
