package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"souled-store/internal/catalog"
	"souled-store/internal/config"
	"souled-store/internal/database"
	"souled-store/internal/handler"
	"souled-store/internal/repository"
	"souled-store/internal/router"
	"souled-store/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real deployments rely on the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting souled-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Optionally import the catalogue at startup. The catalogue is managed
	// externally; an import failure is logged but does not stop serving.
	if cfg.Catalog.ImportEnabled {
		var loader catalog.Loader
		if cfg.Catalog.S3Enabled {
			s3Loader, err := catalog.NewS3Loader(ctx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system")
				loader = catalog.NewFileLoader(logger)
			} else {
				loader = s3Loader
			}
		} else {
			loader = catalog.NewFileLoader(logger)
		}

		importer := catalog.NewImporter(loader, productRepo, logger)
		if _, err := importer.Run(ctx, cfg.Catalog.Source); err != nil {
			logger.Warn().Err(err).Msg("catalogue import failed, serving existing catalogue")
		}
	}

	// Initialize services
	dev := cfg.Store.Environment == "development"
	sessionService := service.NewSessionService(userRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, cfg.Store.TaxRate, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, cfg.Store.TaxRate, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, dev, logger)
	cartHandler := handler.NewCartHandler(cartService, sessionService, dev, logger)
	orderHandler := handler.NewOrderHandler(orderService, sessionService, dev, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, orderHandler, cfg.Store.FrontendURL, cfg.Store.Environment, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
