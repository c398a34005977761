package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CraftLedger_Go/internal/config"
	"github.com/osse101/CraftLedger_Go/internal/database"
	"github.com/osse101/CraftLedger_Go/internal/database/postgres"
	"github.com/osse101/CraftLedger_Go/internal/database/sqlite"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application,
// backed by the store selected in configuration.
type Repositories struct {
	Ledger      repository.Ledger
	Recipe      repository.Recipe
	Crafting    repository.Crafting
	Maintenance repository.Maintenance

	// Pool answers readiness pings and is closed on shutdown
	Pool database.Pool
}

// OpenRepositories opens the configured store, applies migrations and wires
// the repositories on top of it.
func OpenRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if cfg.UsesPostgres() {
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info(LogMsgStoreOpened, "driver", config.DriverPostgres, "host", cfg.DBHost, "db", cfg.DBName)
		return &Repositories{
			Ledger:      postgres.NewLedgerRepository(pool),
			Recipe:      postgres.NewRecipeRepository(pool),
			Crafting:    postgres.NewCraftingRepository(pool),
			Maintenance: postgres.NewMaintenanceRepository(pool),
			Pool:        pool,
		}, nil
	}

	if dir := filepath.Dir(cfg.SQLitePath); dir != "." && cfg.SQLitePath != ":memory:" {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStoreDir, err)
		}
	}
	db, err := database.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	slog.Info(LogMsgStoreOpened, "driver", config.DriverSQLite, "path", cfg.SQLitePath)
	return &Repositories{
		Ledger:      sqlite.NewLedgerRepository(db),
		Recipe:      sqlite.NewRecipeRepository(db),
		Crafting:    sqlite.NewCraftingRepository(db),
		Maintenance: sqlite.NewMaintenanceRepository(db),
		Pool:        database.SQLiteDB{DB: db},
	}, nil
}
