package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cinema-showtime/internal/usecase"
	"cinema-showtime/internal/wire"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// APIServer serves app until SIGINT or SIGTERM, then drains in-flight
// requests and saves state.
func APIServer(app *wire.App, port string, service *usecase.Service, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%s", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Server running on http://localhost%s\n", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return shutdown(shutdownCtx, srv, app.Lock, service, logger)
}

// shutdown stops srv and saves state. The save holds lock, so a handler
// still running after a timed out Shutdown finishes first.
func shutdown(ctx context.Context, srv *http.Server, lock sync.Locker, service *usecase.Service, logger *zap.Logger) error {
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	lock.Lock()
	defer lock.Unlock()

	if err := service.State.Save(context.Background()); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
