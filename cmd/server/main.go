// Package main implements the entry point for the onboarding simulation API
// server, which exposes the persona catalog, per-patient onboarding records,
// the comprehension quiz, simulated integration events, and the clinician
// summary over HTTP.
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

	"github.com/carepath/onboard-api/internal/api"
	"github.com/carepath/onboard-api/internal/catalog"
	"github.com/carepath/onboard-api/internal/config"
	"github.com/carepath/onboard-api/internal/platform/logger"
	"github.com/carepath/onboard-api/internal/service"
	"github.com/carepath/onboard-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// run loads configuration, wires the application components, and serves HTTP
// until interrupted.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"quiz_task_id", cfg.Onboarding.QuizTaskID,
		"messaging_enabled", cfg.Features.MessagingEnabled)

	// All session state lives in memory and is discarded on shutdown.
	cat := catalog.New()
	session, err := store.NewSession(
		cat.Personas(), cat.BaseTasks(), cat.Questions(), appLogger,
		store.WithQuizTaskID(cfg.Onboarding.QuizTaskID))
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	svc, err := service.NewOnboardingService(
		cat, session, store.NewAuditLog(appLogger), cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize onboarding service: %w", err)
	}

	router := api.NewRouter(api.NewOnboardingHandler(svc, appLogger))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
