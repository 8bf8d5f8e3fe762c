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
	"github.com/ErlanBelekov/fittrack/internal/catalog"
	"github.com/ErlanBelekov/fittrack/internal/email"
	"github.com/ErlanBelekov/fittrack/internal/events"
	"github.com/ErlanBelekov/fittrack/internal/health"
	"github.com/ErlanBelekov/fittrack/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/fittrack/internal/log"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
	"github.com/ErlanBelekov/fittrack/internal/ratelimit"
	httptransport "github.com/ErlanBelekov/fittrack/internal/transport/http"
	"github.com/ErlanBelekov/fittrack/internal/transport/http/handler"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/ErlanBelekov/fittrack/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := ctxlog.New(os.Stdout, cfg.Env, cfg.SlogLevel())

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validation.RegisterGin(); err != nil {
		log.Fatalf("validation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.Migrate(cfg.DatabaseURL, logger); err != nil {
		stop()
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	deps := []health.Dependency{{Name: "postgres", Pinger: pool}}

	// Login throttling is shared across replicas when Redis is configured.
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			stop()
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, "fittrack:ratelimit:", cfg.LoginMaxAttempts, cfg.LoginWindow)
		deps = append(deps, health.Dependency{Name: "redis", Pinger: redisPinger(rdb)})
	} else {
		logger.Warn("REDIS_URL not set, using in-process login limiter")
		limiter = ratelimit.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow)
	}

	cat, err := catalog.Load()
	if err != nil {
		stop()
		log.Fatalf("catalog: %v", err)
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.WorkoutEventsTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close event publisher", "error", err)
		}
	}()

	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	// Repositories
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool, logger)
	sessionRepo := postgres.NewSessionRepository(pool)
	mealRepo := postgres.NewMealRepository(pool)

	// Auth
	authUsecase := usecase.NewAuthUsecase(userRepo, sender, limiter, usecase.AuthConfig{
		JWTKey:        []byte(cfg.JWTSecret),
		JWTTTL:        cfg.JWTTTL,
		ResetTokenTTL: cfg.ResetTokenTTL,
		AppBaseURL:    cfg.AppBaseURL,
		BcryptCost:    cfg.BcryptCost,
	}, logger)

	// Workouts, dashboard and diet
	workoutUsecase := usecase.NewWorkoutUsecase(cat, sessionRepo, publisher, logger)
	dashboardUsecase := usecase.NewDashboardUsecase(sessionRepo, settingsRepo, cat, logger)
	dietUsecase := usecase.NewDietUsecase(mealRepo, settingsRepo, logger)

	// Profile and settings
	profileUsecase := usecase.NewProfileUsecase(profileRepo, logger)
	settingsUsecase := usecase.NewSettingsUsecase(settingsRepo, logger)

	handlers := httptransport.Handlers{
		Auth:      handler.NewAuthHandler(authUsecase, logger),
		Workouts:  handler.NewWorkoutHandler(cat, workoutUsecase, logger),
		Dashboard: handler.NewDashboardHandler(dashboardUsecase, logger),
		Diet:      handler.NewDietHandler(dietUsecase, cat, logger),
		Profile:   handler.NewProfileHandler(profileUsecase, logger),
		Settings:  handler.NewSettingsHandler(settingsUsecase, logger),
	}

	metrics.Register()
	checker := health.NewChecker(logger, prometheus.DefaultRegisterer, deps...)

	srv := http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, httptransport.RouterConfig{
			JWTKey:      []byte(cfg.JWTSecret),
			CORSOrigins: cfg.CORSAllowedOrigins,
			HSTS:        !cfg.IsLocal(),
		}, handlers),
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, map[string]http.Handler{
		"/healthz": health.Handler(checker.Liveness),
		"/readyz":  health.Handler(checker.Readiness),
	})

	go func() {
		logger.Info("server started", "port", cfg.Port, "workouts", len(cat.Workouts()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func redisPinger(rdb *redis.Client) health.PingFunc {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
