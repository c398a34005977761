package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CraftLedger_Go/internal/bootstrap"
	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/concurrency"
	"github.com/osse101/CraftLedger_Go/internal/config"
	"github.com/osse101/CraftLedger_Go/internal/crafting"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
	"github.com/osse101/CraftLedger_Go/internal/server"
)

// @title CraftLedger API
// @version 1.0
// @description Inventory ledger, recipe transactions and craft resolution.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	// A local SQLite store runs without a .env file
	if cfg.UsesPostgres() {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		for _, warning := range warnings {
			slog.Warn(warning)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := bootstrap.OpenRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	queryCache := cache.New(cache.Config{Size: cfg.CacheSize, TTL: cfg.CacheTTL})
	bus, hub := bootstrap.InitializeEventSystem()

	ledgerService := ledger.NewService(repos.Ledger, queryCache, bus)
	recipeService := recipe.NewService(repos.Recipe, queryCache, bus, concurrency.NewLockManager[int]())
	craftingService := crafting.NewService(repos.Crafting, queryCache, bus)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		SSEHub:   hub,
		Cache:    queryCache,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.SeedIfEmpty(ctx, cfg.SeedPath, ledgerService, recipeService); err != nil {
		// Seeding is a convenience; the server still starts
		slog.Warn("Seeding skipped", "error", err)
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
	}, server.Services{
		DBPool:   repos.Pool,
		Ledger:   ledgerService,
		Recipes:  recipeService,
		Crafting: craftingService,
		Cache:    queryCache,
		SSEHub:   hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port, "api_key_required", cfg.APIKey != "")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		SSEHub: hub,
		Pool:   repos.Pool,
	})
}
