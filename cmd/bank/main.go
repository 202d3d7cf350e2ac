package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixbank/bank-back/internal/clock"
	"github.com/felixbank/bank-back/internal/config"
	"github.com/felixbank/bank-back/internal/db"
	"github.com/felixbank/bank-back/internal/handlers"
	"github.com/felixbank/bank-back/internal/repository"
)

// idempotencyRetention is how long replayed money-movement responses
// stay available; clients must not retry across this window.
const idempotencyRetention = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bank api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	router := handlers.NewRouter(database, cfg, clock.System{}, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go cleanupIdempotencyKeys(cleanupCtx, repository.NewIdempotencyRepository(database), logger)

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// cleanupIdempotencyKeys periodically drops replay records older than
// the retention window so the table stays bounded.
func cleanupIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-idempotencyRetention)
			deleted, err := repo.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				logger.Error("idempotency key cleanup failed", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("idempotency keys cleaned up", "deleted", deleted)
			}
		}
	}
}
