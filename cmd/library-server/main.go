// Command library-server serves the school library API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/school-library-go/eventstore/oteladapters"
	"github.com/AntonStoeckl/school-library-go/library/features/worker/overduemonitor"
	"github.com/AntonStoeckl/school-library-go/library/gateway"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell/config"
)

const (
	instrumentationName      = "school-library-server"
	shutdownTimeoutTelemetry = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("library server failed: %v", err)
	}
}

func run() error {
	cfg := config.MustLoad()
	logger := config.SetupLogger(cfg.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	observability, shutdownTelemetry, err := setupObservability(ctx, cfg.Observability, logger)
	if err != nil {
		return fmt.Errorf("setting up observability: %w", err)
	}
	defer shutdownTelemetry()

	eventStore, closeStore, err := openEventStore(ctx, cfg.Storage, observability)
	if err != nil {
		return fmt.Errorf("opening %s event store: %w", cfg.Storage.Engine, err)
	}
	defer closeStore()

	handlers := gateway.NewHandlers(eventStore, gateway.HandlerOptions{
		Observability: observability,
		LoanPeriod:    cfg.Loans.LoanPeriod,
	})

	if err = seedDefaultAdmin(ctx, handlers, cfg.DefaultAdmin, logger); err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}

	hub := gateway.NewHub(logger)

	server, err := gateway.NewServer(handlers, gateway.Config{
		JWTSecret:      []byte(cfg.Auth.JWTSecret),
		TokenTTL:       cfg.Auth.TokenTTL,
		Logger:         logger,
		Hub:            hub,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	monitorObservability := shell.Observability{Logger: logger}
	if observability != nil {
		monitorObservability = *observability
	}

	monitor, err := overduemonitor.NewMonitor(handlers.Loans, hub,
		overduemonitor.WithInterval(cfg.Loans.OverdueInterval),
		overduemonitor.WithObservability(monitorObservability),
	)
	if err != nil {
		return err
	}

	go monitor.Run(ctx)

	httpServer := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      server,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("library server listening", "address", cfg.HTTPServer.Address, "engine", cfg.Storage.Engine, "env", cfg.Env)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
		logger.Info("shutting down library server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("library server stopped")

	return nil
}

// setupObservability returns nil collaborators when telemetry is disabled. Handlers then run unwrapped.
func setupObservability(
	ctx context.Context,
	cfg config.Observability,
	logger *slog.Logger,
) (*shell.Observability, func(), error) {

	if !cfg.Enabled {
		return nil, func() {}, nil
	}

	providers, err := config.NewObservabilityProviders(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	observability := &shell.Observability{
		Metrics:          oteladapters.NewMetricsCollector(otel.Meter(instrumentationName)),
		Tracing:          oteladapters.NewTracingCollector(otel.Tracer(instrumentationName)),
		ContextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(logger.Handler()),
	}

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeoutTelemetry)
		defer cancel()

		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("flushing telemetry failed", "error", err.Error())
		}
	}

	return observability, shutdown, nil
}
