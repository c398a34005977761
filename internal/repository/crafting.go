package repository

import (
	"context"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// Crafting defines the interface for craft resolution persistence
type Crafting interface {
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)
	ListInventory(ctx context.Context) ([]domain.InventoryRecord, error)
	// BeginTx starts a transaction covering one craft attempt
	BeginTx(ctx context.Context) (CraftingTx, error)
}

// CraftingTx defines the interface for crafting transactions
type CraftingTx interface {
	Tx
	QuantityWriter
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)
}
