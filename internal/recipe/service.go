package recipe

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/concurrency"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/event"
	"github.com/osse101/CraftLedger_Go/internal/logger"
	"github.com/osse101/CraftLedger_Go/internal/repository"
	"github.com/osse101/CraftLedger_Go/internal/validation"
)

// Service defines the recipe operations
type Service interface {
	// ListRecipes returns every recipe with its lines. Storage failures degrade to an empty list.
	ListRecipes(ctx context.Context) []domain.Recipe
	GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error)
	// SaveRecipe writes the recipe and replaces all of its lines in one transaction
	SaveRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int) error
}

type service struct {
	repo        repository.Recipe
	cache       *cache.QueryCache
	bus         event.Bus
	lockManager *concurrency.LockManager[int]
}

// NewService creates a recipe service. cache and bus may be nil.
func NewService(repo repository.Recipe, c *cache.QueryCache, bus event.Bus, lockManager *concurrency.LockManager[int]) Service {
	if lockManager == nil {
		lockManager = concurrency.NewLockManager[int]()
	}
	return &service{
		repo:        repo,
		cache:       c,
		bus:         bus,
		lockManager: lockManager,
	}
}

func (s *service) ListRecipes(ctx context.Context) []domain.Recipe {
	if recipes, ok := cache.Get[[]domain.Recipe](s.cache, cache.KeyRecipes); ok {
		return cloneRecipes(recipes)
	}

	gen := s.cache.Generation()
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListRecipesFailed, "error", err)
		return []domain.Recipe{}
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	s.cache.SetIfCurrent(cache.KeyRecipes, cloneRecipes(recipes), gen)
	return recipes
}

func (s *service) GetRecipe(ctx context.Context, recipeID int) (*domain.Recipe, error) {
	if !domain.ValidID(recipeID) {
		return nil, fmt.Errorf("%w: recipe id out of range", domain.ErrInvalidInput)
	}
	return s.repo.GetRecipe(ctx, recipeID)
}

// SaveRecipe fills defaults for new recipes, validates, then in a single transaction updates
// or inserts the recipe row and re-inserts its cost and result lines stamped
// with the resolved id. Any failure rolls everything back and is reported as
// domain.ErrRecipeSaveFailed wrapping the cause.
func (s *service) SaveRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	if recipe.IsNew() {
		applyDefaults(&recipe)
	}
	recipe.Costs = slices.Clone(recipe.Costs)
	recipe.Results = slices.Clone(recipe.Results)
	if err := validation.Struct(recipe); err != nil {
		return domain.Recipe{}, saveFailed(err)
	}

	// New recipes have no identity to contend on yet.
	if !recipe.IsNew() {
		defer s.lockManager.Lock(recipe.ID)()
	}

	saved, err := s.save(ctx, recipe)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecipeSaveFailed, "recipe_id", recipe.ID, "error", err)
		return domain.Recipe{}, saveFailed(err)
	}

	s.cache.Invalidate(cache.KeyRecipes)
	logger.FromContext(ctx).Info(LogMsgRecipeSaved,
		"recipe_id", saved.ID,
		"costs", len(saved.Costs),
		"results", len(saved.Results))
	event.PublishAfterCommit(ctx, s.bus, event.NewRecipeChangedEvent(saved.ID, domain.ActionSaved))
	return saved, nil
}

func (s *service) save(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	missing, err := tx.MissingItemIDs(ctx, recipe.ItemIDs())
	if err != nil {
		return domain.Recipe{}, err
	}
	if len(missing) > 0 {
		return domain.Recipe{}, fmt.Errorf("%w: %s %v", domain.ErrItemNotFound, ErrMsgUnknownItems, missing)
	}

	exists := false
	if !recipe.IsNew() {
		if exists, err = tx.RecipeExists(ctx, recipe.ID); err != nil {
			return domain.Recipe{}, err
		}
	}

	if exists {
		if err := tx.UpdateRecipe(ctx, recipe); err != nil {
			return domain.Recipe{}, err
		}
		if err := tx.DeleteRecipeLines(ctx, recipe.ID); err != nil {
			return domain.Recipe{}, err
		}
	} else {
		// Unknown ids are treated as new and receive a generated id.
		id, err := tx.InsertRecipe(ctx, recipe)
		if err != nil {
			return domain.Recipe{}, err
		}
		recipe.ID = id
	}

	for i := range recipe.Costs {
		recipe.Costs[i].RecipeID = recipe.ID
		if err := tx.InsertCost(ctx, recipe.ID, recipe.Costs[i]); err != nil {
			return domain.Recipe{}, err
		}
	}
	for i := range recipe.Results {
		recipe.Results[i].RecipeID = recipe.ID
		if err := tx.InsertResult(ctx, recipe.ID, recipe.Results[i]); err != nil {
			return domain.Recipe{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Recipe{}, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}
	return recipe, nil
}

// DeleteRecipe removes the recipe lines and then the recipe in one transaction
func (s *service) DeleteRecipe(ctx context.Context, recipeID int) error {
	if !domain.ValidID(recipeID) {
		return fmt.Errorf("%w: recipe id out of range", domain.ErrInvalidInput)
	}
	defer s.lockManager.Lock(recipeID)()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.DeleteRecipeLines(ctx, recipeID); err != nil {
		return err
	}
	found, err := tx.DeleteRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	s.cache.Invalidate(cache.KeyRecipes)
	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", recipeID)
	event.PublishAfterCommit(ctx, s.bus, event.NewRecipeChangedEvent(recipeID, domain.ActionDeleted))
	return nil
}

// applyDefaults fills the values a new recipe starts with
func applyDefaults(r *domain.Recipe) {
	if r.Category == "" {
		r.Category = domain.DefaultRecipeCategory
	}
	if r.SuccessChance == 0 {
		r.SuccessChance = domain.DefaultRecipeSuccessChance
	}
}

func saveFailed(err error) error {
	if errors.Is(err, domain.ErrRecipeSaveFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrRecipeSaveFailed, err)
}

func cloneRecipes(in []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(in))
	for i, r := range in {
		r.Costs = slices.Clone(r.Costs)
		r.Results = slices.Clone(r.Results)
		out[i] = r
	}
	return out
}
