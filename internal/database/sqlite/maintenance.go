package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// MaintenanceRepository implements repository.Maintenance for SQLite
type MaintenanceRepository struct {
	db *sql.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Reset deletes every row, children first, and restarts the id counters
func (r *MaintenanceRepository) Reset(ctx context.Context) error {
	h, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() { _ = h.Rollback(ctx) }()

	for _, stmt := range []string{
		`DELETE FROM recipe_results`,
		`DELETE FROM recipe_costs`,
		`DELETE FROM recipes`,
		`DELETE FROM inventory`,
		`DELETE FROM items`,
		`DELETE FROM sqlite_sequence`,
	} {
		if _, err := h.tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}
	return h.Commit(ctx)
}
