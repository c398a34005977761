package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftLedger_Go/internal/database/generated"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// CraftingRepository implements repository.Crafting for PostgreSQL
type CraftingRepository struct {
	recipes *RecipeRepository
	pool    *pgxpool.Pool
	q       *generated.Queries
}

// NewCraftingRepository creates a new CraftingRepository
func NewCraftingRepository(pool *pgxpool.Pool) *CraftingRepository {
	return &CraftingRepository{
		recipes: NewRecipeRepository(pool),
		pool:    pool,
		q:       generated.New(pool),
	}
}

// GetRecipe returns one recipe with its lines
func (r *CraftingRepository) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	return r.recipes.GetRecipe(ctx, recipeID)
}

// ListInventory retrieves every on-hand record
func (r *CraftingRepository) ListInventory(ctx context.Context) ([]domain.InventoryRecord, error) {
	return listInventory(ctx, r.q)
}

// BeginTx starts a transaction covering one craft attempt
func (r *CraftingRepository) BeginTx(ctx context.Context) (repository.CraftingTx, error) {
	return beginTx(ctx, r.pool, r.q)
}
