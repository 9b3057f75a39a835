package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/bokzor/revenue-boost-sub004/internal/adapter/http"
	"github.com/bokzor/revenue-boost-sub004/internal/adapter/postgres"
	redisstore "github.com/bokzor/revenue-boost-sub004/internal/adapter/redis"
	"github.com/bokzor/revenue-boost-sub004/internal/adapter/usecase"
	"github.com/bokzor/revenue-boost-sub004/internal/config"
	"github.com/bokzor/revenue-boost-sub004/internal/db"
)

// main is the entry point of the frequency-capping service. It loads
// configuration, optionally runs database migrations, initializes the
// Postgres pool and Redis counter store, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server and
// drains queued analytics writes.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer rdb.Close()

	counters := redisstore.NewCounterStore(rdb,
		redisstore.WithSessionTTL(cfg.Freq.SessionTTL),
		redisstore.WithOpTimeout(cfg.Freq.OpTimeout),
	)
	sink := postgres.NewEventRepository(pool)
	bots := usecase.NewBotFilter(cfg.Freq.MaxVelocity)
	svc := usecase.NewFrequencyUseCase(counters, sink, bots, logger,
		usecase.WithVelocityWindow(cfg.Freq.VelocityWindow),
	)

	limiter := httpadapter.NewIPRateLimiter(cfg.Freq.RateLimitRPS, cfg.Freq.RateLimitBurst)
	limiter.StartJanitor(ctx)

	handler := httpadapter.NewHandler(svc, logger, limiter)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	// flush in-flight analytics writes before exit
	svc.Wait()
}
