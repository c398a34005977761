package crafting

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/event"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/logger"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// Service defines the crafting operations
type Service interface {
	// Check reports whether the recipe is affordable from current stock and what is missing
	Check(ctx context.Context, recipeID int) (domain.CraftCheck, error)
	// Resolve applies one craft attempt for the chosen outcome atomically
	Resolve(ctx context.Context, recipeID int, outcome domain.Outcome) (domain.CraftResult, error)
}

type service struct {
	repo  repository.Crafting
	cache *cache.QueryCache
	bus   event.Bus
}

// NewService creates a crafting service. cache and bus may be nil.
func NewService(repo repository.Crafting, c *cache.QueryCache, bus event.Bus) Service {
	return &service{
		repo:  repo,
		cache: c,
		bus:   bus,
	}
}

func (s *service) Check(ctx context.Context, recipeID int) (domain.CraftCheck, error) {
	if !domain.ValidID(recipeID) {
		return domain.CraftCheck{}, fmt.Errorf("%w: recipe id out of range", domain.ErrInvalidInput)
	}

	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return domain.CraftCheck{}, err
	}
	records, err := s.repo.ListInventory(ctx)
	if err != nil {
		return domain.CraftCheck{}, fmt.Errorf("%s: %w", ErrMsgReadTx, err)
	}

	snapshot := domain.NewSnapshot(records)
	missing := Shortfall(*recipe, snapshot)
	return domain.CraftCheck{
		RecipeID:  recipeID,
		Craftable: len(missing) == 0,
		Missing:   missing,
	}, nil
}

// Resolve runs inside one transaction: verify every cost line, consume the
// remove=true costs, then add every result whose type matches outcome.
// A shortfall at any point rolls back the whole attempt.
func (s *service) Resolve(ctx context.Context, recipeID int, outcome domain.Outcome) (domain.CraftResult, error) {
	log := logger.FromContext(ctx)

	if !outcome.Valid() {
		return domain.CraftResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, outcome)
	}
	if !domain.ValidID(recipeID) {
		return domain.CraftResult{}, fmt.Errorf("%w: recipe id out of range", domain.ErrInvalidInput)
	}

	result, err := s.resolve(ctx, recipeID, outcome)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientMaterials) {
			log.Info(LogMsgCraftRejected, "recipe_id", recipeID, "reason", err)
		}
		return domain.CraftResult{}, err
	}

	s.cache.Invalidate(cache.KeyInventory)
	log.Info(LogMsgCraftResolved,
		"recipe_id", recipeID,
		"outcome", outcome,
		"consumed", len(result.Consumed),
		"produced", len(result.Produced))

	for _, change := range append(append([]domain.QuantityChange{}, result.Consumed...), result.Produced...) {
		event.PublishAfterCommit(ctx, s.bus, event.NewInventoryChangedEvent(change.ItemID, change.After))
	}
	event.PublishAfterCommit(ctx, s.bus, event.NewCraftCompletedEvent(result))
	return result, nil
}

func (s *service) resolve(ctx context.Context, recipeID int, outcome domain.Outcome) (domain.CraftResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return domain.CraftResult{}, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	recipe, err := tx.GetRecipe(ctx, recipeID)
	if err != nil {
		return domain.CraftResult{}, err
	}

	// Tools (remove=false) must be on hand even though they are not consumed.
	for _, cost := range recipe.Costs {
		have, err := tx.GetAmountForUpdate(ctx, cost.ItemID)
		if err != nil {
			return domain.CraftResult{}, fmt.Errorf("%s: %w", ErrMsgReadTx, err)
		}
		if have < cost.Amount {
			return domain.CraftResult{}, fmt.Errorf("%w: item %d needs %d, has %d",
				domain.ErrInsufficientMaterials, cost.ItemID, cost.Amount, have)
		}
	}

	result := domain.CraftResult{
		RecipeID: recipeID,
		Outcome:  outcome,
		Consumed: []domain.QuantityChange{},
		Produced: []domain.QuantityChange{},
	}

	for _, cost := range recipe.Costs {
		if !cost.Remove {
			continue
		}
		change, err := ledger.Adjust(ctx, tx, cost.ItemID, -cost.Amount)
		if err != nil {
			return domain.CraftResult{}, err
		}
		result.Consumed = append(result.Consumed, change)
	}

	for _, res := range recipe.ResultsFor(outcome) {
		change, err := ledger.Adjust(ctx, tx, res.ItemID, res.Amount)
		if err != nil {
			return domain.CraftResult{}, err
		}
		result.Produced = append(result.Produced, change)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.CraftResult{}, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}
	return result, nil
}
