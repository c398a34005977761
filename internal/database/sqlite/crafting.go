package sqlite

import (
	"context"
	"database/sql"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// CraftingRepository implements repository.Crafting for SQLite
type CraftingRepository struct {
	db *sql.DB
}

// NewCraftingRepository creates a new CraftingRepository
func NewCraftingRepository(db *sql.DB) *CraftingRepository {
	return &CraftingRepository{db: db}
}

// GetRecipe returns one recipe with its lines
func (r *CraftingRepository) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	return getRecipe(ctx, r.db, recipeID)
}

// ListInventory retrieves every on-hand record
func (r *CraftingRepository) ListInventory(ctx context.Context) ([]domain.InventoryRecord, error) {
	return listInventory(ctx, r.db)
}

// BeginTx starts a transaction covering one craft attempt
func (r *CraftingRepository) BeginTx(ctx context.Context) (repository.CraftingTx, error) {
	return beginTx(ctx, r.db)
}
