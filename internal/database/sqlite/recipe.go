package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// RecipeRepository implements repository.Recipe for SQLite
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ListRecipes returns all recipes with their lines, joined in memory
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := queryAll(ctx, r.db, scanRecipe, `SELECT `+recipeCols+` FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	costs, err := queryAll(ctx, r.db, scanCost, `SELECT `+costCols+` FROM recipe_costs ORDER BY recipe_id, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe costs: %w", err)
	}
	results, err := queryAll(ctx, r.db, scanResult, `SELECT `+resultCols+` FROM recipe_results ORDER BY recipe_id, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe results: %w", err)
	}

	index := make(map[int]int, len(recipes))
	for i, rec := range recipes {
		index[rec.ID] = i
	}
	for _, c := range costs {
		if i, ok := index[c.RecipeID]; ok {
			recipes[i].Costs = append(recipes[i].Costs, c)
		}
	}
	for _, res := range results {
		if i, ok := index[res.RecipeID]; ok {
			recipes[i].Results = append(recipes[i].Results, res)
		}
	}
	return recipes, nil
}

// GetRecipe returns one recipe with its lines
func (r *RecipeRepository) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	return getRecipe(ctx, r.db, recipeID)
}

// BeginTx starts a recipe transaction
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	return beginTx(ctx, r.db)
}

func getRecipe(ctx context.Context, q querier, recipeID int) (*domain.Recipe, error) {
	rec, err := scanRecipe(q.QueryRowContext(ctx, `SELECT `+recipeCols+` FROM recipes WHERE id = ?`, recipeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	rec.Costs, err = queryAll(ctx, q, scanCost, `SELECT `+costCols+` FROM recipe_costs WHERE recipe_id = ? ORDER BY id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe costs: %w", err)
	}
	rec.Results, err = queryAll(ctx, q, scanResult, `SELECT `+resultCols+` FROM recipe_results WHERE recipe_id = ? ORDER BY id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe results: %w", err)
	}
	return &rec, nil
}

// GetRecipe reads a recipe inside the transaction
func (h *txHelper) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	return getRecipe(ctx, h.tx, recipeID)
}

// RecipeExists reports whether a recipe row exists
func (h *txHelper) RecipeExists(ctx context.Context, recipeID int) (bool, error) {
	var exists bool
	err := h.tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM recipes WHERE id = ?)`, recipeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recipe: %w", err)
	}
	return exists, nil
}

// InsertRecipe inserts the recipe scalars and returns the generated id
func (h *txHelper) InsertRecipe(ctx context.Context, recipe domain.Recipe) (int, error) {
	res, err := h.tx.ExecContext(ctx,
		`INSERT INTO recipes (name, category, success_chance) VALUES (?, ?, ?)`,
		recipe.Name, recipe.Category, recipe.SuccessChance)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read recipe id: %w", err)
	}
	return int(id), nil
}

// UpdateRecipe overwrites the recipe scalars
func (h *txHelper) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	_, err := h.tx.ExecContext(ctx,
		`UPDATE recipes SET name = ?, category = ?, success_chance = ? WHERE id = ?`,
		recipe.Name, recipe.Category, recipe.SuccessChance, recipe.ID)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// DeleteRecipeLines removes every cost and result owned by the recipe
func (h *txHelper) DeleteRecipeLines(ctx context.Context, recipeID int) error {
	if _, err := h.tx.ExecContext(ctx, `DELETE FROM recipe_costs WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe costs: %w", err)
	}
	if _, err := h.tx.ExecContext(ctx, `DELETE FROM recipe_results WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe results: %w", err)
	}
	return nil
}

// InsertCost stores one cost line for the recipe
func (h *txHelper) InsertCost(ctx context.Context, recipeID int, cost domain.CraftingCost) error {
	_, err := h.tx.ExecContext(ctx,
		`INSERT INTO recipe_costs (recipe_id, item_id, amount, remove) VALUES (?, ?, ?, ?)`,
		recipeID, cost.ItemID, cost.Amount, cost.Remove)
	if err != nil {
		return fmt.Errorf("failed to insert recipe cost: %w", err)
	}
	return nil
}

// InsertResult stores one result line for the recipe
func (h *txHelper) InsertResult(ctx context.Context, recipeID int, result domain.CraftingResult) error {
	_, err := h.tx.ExecContext(ctx,
		`INSERT INTO recipe_results (recipe_id, item_id, amount, outcome) VALUES (?, ?, ?, ?)`,
		recipeID, result.ItemID, result.Amount, string(result.Type))
	if err != nil {
		return fmt.Errorf("failed to insert recipe result: %w", err)
	}
	return nil
}

// DeleteRecipe removes the recipe row and reports whether it existed
func (h *txHelper) DeleteRecipe(ctx context.Context, recipeID int) (bool, error) {
	res, err := h.tx.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	return n > 0, nil
}
