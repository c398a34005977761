package repository

import (
	"context"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	// ListRecipes returns every recipe joined with its cost and result lines
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)
	BeginTx(ctx context.Context) (RecipeTx, error)
}

// RecipeTx defines the interface for recipe transactions
type RecipeTx interface {
	Tx
	RecipeExists(ctx context.Context, recipeID int) (bool, error)
	// MissingItemIDs returns the subset of ids with no catalog entry
	MissingItemIDs(ctx context.Context, itemIDs []int) ([]int, error)
	InsertRecipe(ctx context.Context, recipe domain.Recipe) (int, error)
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error
	DeleteRecipeLines(ctx context.Context, recipeID int) error
	InsertCost(ctx context.Context, recipeID int, cost domain.CraftingCost) error
	InsertResult(ctx context.Context, recipeID int, result domain.CraftingResult) error
	DeleteRecipe(ctx context.Context, recipeID int) (bool, error)
}
