package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftLedger_Go/internal/database/generated"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// RecipeRepository implements repository.Recipe for PostgreSQL
type RecipeRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// ListRecipes returns all recipes with their lines, joined in memory
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.q.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	costs, err := r.q.ListRecipeCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe costs: %w", err)
	}
	results, err := r.q.ListRecipeResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe results: %w", err)
	}

	costsByRecipe := make(map[int32][]generated.RecipeCost)
	for _, c := range costs {
		costsByRecipe[c.RecipeID] = append(costsByRecipe[c.RecipeID], c)
	}
	resultsByRecipe := make(map[int32][]generated.RecipeResult)
	for _, res := range results {
		resultsByRecipe[res.RecipeID] = append(resultsByRecipe[res.RecipeID], res)
	}

	recipes := make([]domain.Recipe, len(rows))
	for i, row := range rows {
		recipes[i] = toDomainRecipe(row, costsByRecipe[row.ID], resultsByRecipe[row.ID])
	}
	return recipes, nil
}

// GetRecipe returns one recipe with its lines
func (r *RecipeRepository) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	row, err := r.q.GetRecipe(ctx, int32(recipeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return loadRecipeLines(ctx, r.q, row)
}

// BeginTx starts a recipe transaction
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	return beginTx(ctx, r.pool, r.q)
}

func loadRecipeLines(ctx context.Context, q *generated.Queries, row generated.Recipe) (*domain.Recipe, error) {
	costs, err := q.GetRecipeCosts(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe costs: %w", err)
	}
	results, err := q.GetRecipeResults(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe results: %w", err)
	}
	recipe := toDomainRecipe(row, costs, results)
	return &recipe, nil
}

// GetRecipe locks the recipe row for the rest of the transaction
func (h *txHelper) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	row, err := h.q.GetRecipeForUpdate(ctx, int32(recipeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return loadRecipeLines(ctx, h.q, row)
}

// RecipeExists reports whether a recipe row exists
func (h *txHelper) RecipeExists(ctx context.Context, recipeID int) (bool, error) {
	exists, err := h.q.RecipeExists(ctx, int32(recipeID))
	if err != nil {
		return false, fmt.Errorf("failed to check recipe: %w", err)
	}
	return exists, nil
}

// InsertRecipe inserts the recipe scalars and returns the generated id
func (h *txHelper) InsertRecipe(ctx context.Context, recipe domain.Recipe) (int, error) {
	id, err := h.q.InsertRecipe(ctx, generated.InsertRecipeParams{
		Name:          recipe.Name,
		Category:      recipe.Category,
		SuccessChance: int32(recipe.SuccessChance),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	return int(id), nil
}

// UpdateRecipe overwrites the recipe scalars
func (h *txHelper) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	err := h.q.UpdateRecipe(ctx, generated.UpdateRecipeParams{
		ID:            int32(recipe.ID),
		Name:          recipe.Name,
		Category:      recipe.Category,
		SuccessChance: int32(recipe.SuccessChance),
	})
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// DeleteRecipeLines removes every cost and result owned by the recipe
func (h *txHelper) DeleteRecipeLines(ctx context.Context, recipeID int) error {
	if err := h.q.DeleteRecipeCosts(ctx, int32(recipeID)); err != nil {
		return fmt.Errorf("failed to delete recipe costs: %w", err)
	}
	if err := h.q.DeleteRecipeResults(ctx, int32(recipeID)); err != nil {
		return fmt.Errorf("failed to delete recipe results: %w", err)
	}
	return nil
}

// InsertCost stores one cost line for the recipe
func (h *txHelper) InsertCost(ctx context.Context, recipeID int, cost domain.CraftingCost) error {
	err := h.q.InsertRecipeCost(ctx, generated.InsertRecipeCostParams{
		RecipeID: int32(recipeID),
		ItemID:   int32(cost.ItemID),
		Amount:   int32(cost.Amount),
		Remove:   cost.Remove,
	})
	if err != nil {
		return fmt.Errorf("failed to insert recipe cost: %w", mapWriteError(err, cost.ItemID))
	}
	return nil
}

// InsertResult stores one result line for the recipe
func (h *txHelper) InsertResult(ctx context.Context, recipeID int, result domain.CraftingResult) error {
	err := h.q.InsertRecipeResult(ctx, generated.InsertRecipeResultParams{
		RecipeID: int32(recipeID),
		ItemID:   int32(result.ItemID),
		Amount:   int32(result.Amount),
		Outcome:  string(result.Type),
	})
	if err != nil {
		return fmt.Errorf("failed to insert recipe result: %w", mapWriteError(err, result.ItemID))
	}
	return nil
}

// DeleteRecipe removes the recipe row and reports whether it existed
func (h *txHelper) DeleteRecipe(ctx context.Context, recipeID int) (bool, error) {
	n, err := h.q.DeleteRecipe(ctx, int32(recipeID))
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	return n > 0, nil
}
