package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/fittrack/config"
	"github.com/ErlanBelekov/fittrack/internal/email"
	"github.com/ErlanBelekov/fittrack/internal/health"
	"github.com/ErlanBelekov/fittrack/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/fittrack/internal/log"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
	"github.com/ErlanBelekov/fittrack/internal/reminder"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := ctxlog.New(os.Stdout, cfg.Env, cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	logger.Info("db connected")

	metrics.Register()
	checker := health.NewChecker(logger, prometheus.DefaultRegisterer, health.Dependency{Name: "postgres", Pinger: pool})

	settingsRepo := postgres.NewSettingsRepository(pool, logger)
	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	// Several replicas may run; claims use SKIP LOCKED so each reminder goes out once.
	dispatcher := reminder.NewDispatcher(
		settingsRepo,
		sender,
		logger,
		time.Duration(cfg.ReminderIntervalSec)*time.Second,
		cfg.ReminderBatchSize,
		cfg.ReminderConcurrency,
		cfg.AppBaseURL,
	)
	go dispatcher.Start(ctx)

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, map[string]http.Handler{
		"/healthz": health.Handler(checker.Liveness),
		"/readyz":  health.Handler(checker.Readiness),
	})
	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}

	logger.Info("reminder process shut down")
}
