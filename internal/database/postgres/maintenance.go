package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftLedger_Go/internal/database/generated"
)

// MaintenanceRepository implements repository.Maintenance for PostgreSQL
type MaintenanceRepository struct {
	q *generated.Queries
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{q: generated.New(pool)}
}

// Reset truncates every table and restarts the id sequences
func (r *MaintenanceRepository) Reset(ctx context.Context) error {
	if err := r.q.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}
