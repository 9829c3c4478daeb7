// Command bakery-serve serves the bundled bakery application for manual
// exploration or for running the suite against a long-lived server.
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

	"github.com/networkteam/bakery-e2e/appserver"
	"github.com/networkteam/bakery-e2e/config"
	"github.com/networkteam/bakery-e2e/internal/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bakery-serve failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, nil)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           appserver.NewRouter(appserver.Options{Logger: logger}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving bakery app", slog.String("url", "http://"+cfg.ListenAddr+"/login.html"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
