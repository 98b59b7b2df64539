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

	"github.com/webcore-labs/stripe-gateway/api/bootstrap"
	"github.com/webcore-labs/stripe-gateway/api/config"
	"github.com/webcore-labs/stripe-gateway/api/router"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := bootstrap.Ensure(); err != nil {
		log.Error("bootstrap failed", slog.String("detail", err.Error()))
		os.Exit(1)
	}

	handler := router.New(log, bootstrap.GetPaymentService())
	srv := &http.Server{
		Addr:         ":" + config.AppConfig.HTTPPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", slog.String("addr", srv.Addr), slog.String("mode", config.AppConfig.Mode))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server failed", slog.String("detail", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", slog.String("detail", err.Error()))
			os.Exit(1)
		}
		log.Info("server stopped")
	}
}
