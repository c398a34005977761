package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CraftLedger_Go/internal/bootstrap"
	"github.com/osse101/CraftLedger_Go/internal/config"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
	"github.com/osse101/CraftLedger_Go/internal/seed"
)

func main() {
	seedPath := flag.String("seed", "", "Load a seed catalog (JSON) after migrating")
	reset := flag.Bool("reset", false, "Delete all items, inventory and recipes before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	// 1. Make sure the Postgres database exists
	if cfg.UsesPostgres() {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	// 2. Open the store; this applies pending migrations
	fmt.Println("Running migrations...")
	repos, err := bootstrap.OpenRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer repos.Pool.Close()
	fmt.Println("Migrations completed successfully.")

	// 3. Optionally wipe every relation
	if *reset {
		fmt.Println("Resetting store...")
		if err := repos.Maintenance.Reset(ctx); err != nil {
			log.Fatalf("Failed to reset store: %v", err)
		}
		fmt.Println("Store reset.")
	}

	// 4. Optionally load a seed catalog through the services
	if *seedPath != "" {
		loader, err := seed.NewLoader(
			ledger.NewService(repos.Ledger, nil, nil),
			recipe.NewService(repos.Recipe, nil, nil, nil),
		)
		if err != nil {
			log.Fatalf("Failed to create seed loader: %v", err)
		}
		summary, err := loader.LoadFile(ctx, *seedPath)
		if err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
		fmt.Printf("Seeded %d items, %d inventory records, %d recipes.\n", summary.Items, summary.Inventory, summary.Recipes)
	}
}

// ensureDatabase connects to the maintenance database and creates DB_NAME if missing
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.GetAdminConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
