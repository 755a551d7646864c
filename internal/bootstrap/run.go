package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpx "github.com/docvault/docvault-ui/internal/http"
)

const shutdownTimeout = 10 * time.Second

// Run loads configuration, wires the services, and serves HTTP until the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting docvault-ui",
		"dev", cfg.IsDev,
		"backend", cfg.Backend.BaseURL,
		"session_store", cfg.Session.Store)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, cleanup, err := NewSessionStore(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	services, err := NewServices(&ServiceDeps{
		Config:   &cfg,
		Sessions: sessions,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	handler, err := httpx.NewRouter(httpx.RouterServices{
		Auth:      services.Auth,
		Documents: services.Documents,
		Users:     services.Users,
		Groups:    services.Groups,
		IsDev:     cfg.IsDev,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
