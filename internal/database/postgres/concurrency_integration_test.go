package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftLedger_Go/internal/crafting"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
)

// TestConcurrentCraft_Integration checks that row locks prevent lost updates:
// with enough ore for exactly half the attempts, exactly half succeed.
func TestConcurrentCraft_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	ledgerSvc := ledger.NewService(NewLedgerRepository(pool), nil, nil)
	recipeSvc := recipe.NewService(NewRecipeRepository(pool), nil, nil, nil)
	craftSvc := crafting.NewService(NewCraftingRepository(pool), nil, nil)

	ore, err := ledgerSvc.UpsertItem(ctx, domain.Item{Name: "Iron Ore", Price: 10, Category: "Material"})
	require.NoError(t, err)
	ingot, err := ledgerSvc.UpsertItem(ctx, domain.Item{Name: "Iron Ingot", Price: 30, Category: "Material"})
	require.NoError(t, err)

	smelt, err := recipeSvc.SaveRecipe(ctx, domain.Recipe{
		Name:          "Smelt Iron Ingot",
		Category:      "Smelting",
		SuccessChance: 100,
		Costs:         []domain.CraftingCost{{ItemID: ore.ID, Amount: 2, Remove: true}},
		Results:       []domain.CraftingResult{{ItemID: ingot.ID, Amount: 1, Type: domain.OutcomeSuccess}},
	})
	require.NoError(t, err)

	const attempts = 20
	require.NoError(t, ledgerSvc.SetQuantity(ctx, ore.ID, attempts)) // enough for attempts/2 crafts

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		short     int
		other     []error
	)
	wg.Add(attempts)

	startTime := time.Now()
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := craftSvc.Resolve(ctx, smelt.ID, domain.OutcomeSuccess)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientMaterials):
				short++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()
	t.Logf("Completed %d craft attempts in %v", attempts, time.Since(startTime))

	require.Empty(t, other)
	assert.Equal(t, attempts/2, succeeded)
	assert.Equal(t, attempts/2, short)

	amounts := map[int]int{}
	for _, rec := range ledgerSvc.ListInventory(ctx) {
		amounts[rec.ItemID] = rec.Amount
	}
	assert.Zero(t, amounts[ore.ID], "ore should be fully consumed with no record left")
	assert.Equal(t, attempts/2, amounts[ingot.ID], "every successful craft produces exactly one ingot")
}
