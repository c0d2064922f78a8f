// Package app wires configuration, logging, storage, the funding service
// and the HTTP server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/ahsanali17/crowdfund-backend/internal/adapter/postgres"
	"github.com/ahsanali17/crowdfund-backend/internal/adapter/postgres/notification"
	"github.com/ahsanali17/crowdfund-backend/internal/adapter/transfer"
	"github.com/ahsanali17/crowdfund-backend/internal/auth"
	"github.com/ahsanali17/crowdfund-backend/internal/config"
	"github.com/ahsanali17/crowdfund-backend/internal/notify"
	"github.com/ahsanali17/crowdfund-backend/internal/service/funding"
	"github.com/ahsanali17/crowdfund-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// funding service with its notification sinks and transferer, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("archive", cfg.Database.Enabled()),
	)

	// Notification sinks. The in-memory log always backs the feed; the
	// PostgreSQL archive joins the fanout when a DSN is configured.
	feed := notify.NewLog()
	var notifier funding.Notifier = feed

	deps := rest.Deps{
		Log:           logger,
		Notifications: feed,
		Version:       BuildVersion(),
	}

	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		archive := notification.New(pool)
		notifier = notify.NewMulti(feed, archive)
		deps.Notifications = archive
		deps.Pinger = pool
	}

	var transferer funding.Transferer
	if cfg.Funding.TransferEndpoint != "" {
		transferer = transfer.NewWebhook(logger, cfg.Funding.TransferEndpoint, cfg.Funding.TransferTimeout)
	} else {
		logger.Warn("no transfer endpoint configured, running ledger-only")
		transferer = transfer.NewLedgerOnly(logger)
	}

	svc := funding.New(logger, transferer, notifier, clockwork.NewRealClock())
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	deps.Funding = svc
	deps.Tokens = tokens
	deps.Validator = tokens

	router := rest.New(cfg, deps)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
