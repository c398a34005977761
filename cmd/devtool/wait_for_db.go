package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftLedger_Go/internal/config"
	"github.com/osse101/CraftLedger_Go/internal/database"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
	waitPingTimeout   = 3 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the configured store to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for i := 0; i < waitMaxRetries; i++ {
		err = pingStore(cfg)
		if err == nil {
			PrintSuccess("Database is ready (%s)", cfg.DBDriver)
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}

// pingStore opens the configured store once and pings it
func pingStore(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitPingTimeout)
	defer cancel()

	if !cfg.UsesPostgres() {
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.PingContext(ctx)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), 1, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
