package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
	"github.com/osse101/CraftLedger_Go/internal/seed"
)

// SeedIfEmpty loads the starter catalog from path when the store holds no
// items. A missing seed file is not an error.
func SeedIfEmpty(ctx context.Context, path string, ledgerSvc ledger.Service, recipeSvc recipe.Service) error {
	if path == "" {
		return nil
	}
	if items := ledgerSvc.ListItems(ctx); len(items) > 0 {
		slog.Debug(LogMsgSeedSkippedNotEmpty, "items", len(items))
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgSeedFileMissing, "path", path)
		return nil
	}

	loader, err := seed.NewLoader(ledgerSvc, recipeSvc)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeed, err)
	}
	summary, err := loader.LoadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeed, err)
	}

	slog.Info(LogMsgSeedApplied,
		"path", path,
		"items", summary.Items,
		"inventory", summary.Inventory,
		"recipes", summary.Recipes)
	return nil
}
