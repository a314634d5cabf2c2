// Package main implements the storefront HTTP service.
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

	_ "net/http/pprof"

	"github.com/duckydrinks/storefront/internal/app"
	"github.com/duckydrinks/storefront/internal/cart"
	"github.com/duckydrinks/storefront/internal/config"
	"github.com/duckydrinks/storefront/pkg/bootstrap"
	"github.com/duckydrinks/storefront/pkg/config/configloader"
	"golang.org/x/sync/errgroup"
)

const serviceName = "storefront"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run initializes the application, opens the cart store, and starts the HTTP
// and pprof servers.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	persister, closeStore, err := setupPersister(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up cart persistence: %w", err)
	}
	defer closeStore()

	httpServer, pprofServer := setupServers(persister, logger, cfg)

	g, gCtx := errgroup.WithContext(ctx)

	// Start the HTTP server
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	// Start the pprof server if enabled
	if cfg.PProf.Enabled {
		g.Go(func() error {
			logger.Info("Pprof server listening", slog.String("addr", pprofServer.Addr))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server failed: %w", err)
			}
			return nil
		})
		// gracefully shutdown pprof server on context cancellation
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down pprof server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return pprofServer.Shutdown(shutdownCtx)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}

// setupPersister opens the embedded cart store when a path is configured and
// falls back to in-memory carts otherwise.
func setupPersister(cfg *config.Config) (cart.Persister, func(), error) {
	if cfg.Cart.DBPath == "" {
		return cart.NewMemoryPersister(), func() {}, nil
	}
	db, err := bootstrap.NewCartDB(cfg.Cart.DBPath, cfg.Cart.LockTimeout)
	if err != nil {
		return nil, nil, err
	}
	persister, err := cart.NewBoltPersister(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return persister, func() { _ = db.Close() }, nil
}

// setupServers initializes the HTTP and pprof servers with the provided cart
// persister, logger, and configuration.
func setupServers(persister cart.Persister, logger *slog.Logger, cfg *config.Config) (*http.Server, *http.Server) {
	deps := app.SetupDependencies(cfg, persister, logger)
	httpServer := app.SetupHttpServer(deps, cfg)
	pprofServer := &http.Server{
		Addr: cfg.PProf.Addr,
	}
	return httpServer, pprofServer
}
