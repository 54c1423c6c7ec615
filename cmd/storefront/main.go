package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/geo"
	"github.com/nikolayk812/storefront/internal/httpapi"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/session"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("newLogger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	geoClient, err := geo.NewClient(cfg.GeoBaseURL, cfg.GeoTimeout)
	if err != nil {
		return fmt.Errorf("geo.NewClient: %w", err)
	}

	sessions, err := session.NewRegistry(
		repository.NewClientStorage(pool),
		geoClient,
		logger,
		session.WithDetectTimeout(cfg.DetectTimeout),
		session.WithMaxSessions(cfg.MaxSessions),
	)
	if err != nil {
		return fmt.Errorf("session.NewRegistry: %w", err)
	}

	orders := repository.NewOrder(pool)

	checkoutService, err := checkout.NewService(orders, cfg.PaymentPublicKey, logger)
	if err != nil {
		return fmt.Errorf("checkout.NewService: %w", err)
	}

	if cfg.AdminTokenSecret == "" {
		logger.Warn("ADMIN_TOKEN_SECRET is empty, admin routes are locked")
	}

	router, err := httpapi.NewRouter(httpapi.Deps{
		Logger:         logger,
		Sessions:       sessions,
		Products:       repository.NewProduct(pool),
		Messages:       repository.NewMessage(pool),
		Stats:          repository.NewStats(pool),
		Orders:         orders,
		Checkout:       checkoutService,
		Geo:            geoClient,
		AdminSecret:    cfg.AdminTokenSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("httpapi.NewRouter: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	sessions.Wait()

	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
