package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/welldanyogia/webrana-trivia-backend/internal/api"
	"github.com/welldanyogia/webrana-trivia-backend/internal/config"
	"github.com/welldanyogia/webrana-trivia-backend/internal/database"
	"github.com/welldanyogia/webrana-trivia-backend/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.LoadWithValidation()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	log := logger.New(os.Stdout, level)
	slog.SetDefault(log)

	slog.Info("Starting Trivia Backend Server...")
	cfg.LogConfig(log)

	db, err := database.Connect(cfg.DatabaseURL, database.GormLogLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("Failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedData {
		if _, err := database.Seed(ctx, db); err != nil {
			return err
		}
	}

	e := api.NewRouter(&api.RouterConfig{
		DB:             db,
		Logger:         log,
		AllowedOrigins: cfg.Origins(),
		Production:     cfg.AppEnv == "production",
		RateLimit:      cfg.RateLimitRequests,
		RateBurst:      cfg.RateLimitBurst,
		Done:           ctx.Done(),
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
