package recipe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/concurrency"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/event"
	"github.com/osse101/CraftLedger_Go/internal/testing/memstore"
)

var errStore = errors.New("write failed")

func setup(t *testing.T) (*memstore.Store, Service, *event.MemoryBus) {
	t.Helper()
	store := memstore.New()
	store.PutItem(domain.Item{ID: 1, Name: "Iron Ore", Price: 5, Category: "Ores"})
	store.PutItem(domain.Item{ID: 2, Name: "Coal", Price: 2, Category: "Fuel"})
	store.PutItem(domain.Item{ID: 3, Name: "Iron Ingot", Price: 15, Category: "Ingots"})
	store.PutItem(domain.Item{ID: 4, Name: "Hammer", Price: 30, Category: "Tools"})
	store.PutItem(domain.Item{ID: 5, Name: "Slag", Price: 0, Category: "Junk"})

	bus := event.NewMemoryBus()
	c := cache.New(cache.Config{Size: 8, TTL: time.Minute})
	return store, NewService(store.Recipes(), c, bus, concurrency.NewLockManager[int]()), bus
}

func smelt() domain.Recipe {
	return domain.Recipe{
		Name:          "Smelt Iron Ingot",
		Category:      "Smelting",
		SuccessChance: 100,
		Costs: []domain.CraftingCost{
			{ItemID: 1, Amount: 2, Remove: true},
			{ItemID: 2, Amount: 1, Remove: true},
		},
		Results: []domain.CraftingResult{
			{ItemID: 3, Amount: 1, Type: domain.OutcomeSuccess},
			{ItemID: 5, Amount: 1, Type: domain.OutcomeFail},
		},
	}
}

func TestSaveRecipe_InsertNew(t *testing.T) {
	store, svc, bus := setup(t)
	var got []event.Event
	bus.Subscribe(event.RecipesChanged, func(_ context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	})

	saved, err := svc.SaveRecipe(context.Background(), smelt())
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)

	stored, ok := store.RecipeByID(saved.ID)
	require.True(t, ok)
	assert.Len(t, stored.Costs, 2)
	assert.Len(t, stored.Results, 2)
	for _, c := range stored.Costs {
		assert.Equal(t, saved.ID, c.RecipeID)
	}
	for _, r := range stored.Results {
		assert.Equal(t, saved.ID, r.RecipeID)
	}

	require.Len(t, got, 1)
	assert.Equal(t, domain.RecipeChangedPayload{RecipeID: 1, Action: domain.ActionSaved}, got[0].Payload)
}

func TestSaveRecipe_Defaults(t *testing.T) {
	_, svc, _ := setup(t)

	saved, err := svc.SaveRecipe(context.Background(), domain.Recipe{Name: "Empty"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRecipeCategory, saved.Category)
	assert.Equal(t, domain.DefaultRecipeSuccessChance, saved.SuccessChance)
}

func TestSaveRecipe_ReplacesLinesIdempotently(t *testing.T) {
	store, svc, _ := setup(t)
	ctx := context.Background()

	saved, err := svc.SaveRecipe(ctx, smelt())
	require.NoError(t, err)

	edited := saved
	edited.Name = "Smelt Iron Ingot (fast)"
	edited.Costs = []domain.CraftingCost{{ItemID: 1, Amount: 3, Remove: true}}

	for i := 0; i < 2; i++ {
		_, err := svc.SaveRecipe(ctx, edited)
		require.NoError(t, err)

		stored, _ := store.RecipeByID(saved.ID)
		assert.Equal(t, "Smelt Iron Ingot (fast)", stored.Name)
		require.Len(t, stored.Costs, 1, "lines must be replaced, not appended")
		assert.Equal(t, 3, stored.Costs[0].Amount)
		assert.Len(t, stored.Results, 2)
	}

	assert.Len(t, svc.ListRecipes(ctx), 1)
}

func TestSaveRecipe_UnknownIDIsInsertedWithGeneratedID(t *testing.T) {
	_, svc, _ := setup(t)
	r := smelt()
	r.ID = 77

	saved, err := svc.SaveRecipe(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
}

func TestSaveRecipe_FailureRollsBackEverything(t *testing.T) {
	store, svc, _ := setup(t)
	ctx := context.Background()

	t.Run("new recipe leaves nothing behind", func(t *testing.T) {
		store.FailOn("InsertResult", errStore)
		defer store.FailOn("InsertResult", nil)

		_, err := svc.SaveRecipe(ctx, smelt())
		assert.ErrorIs(t, err, domain.ErrRecipeSaveFailed)
		assert.ErrorIs(t, err, errStore)
		assert.Empty(t, svc.ListRecipes(ctx))
	})

	t.Run("existing recipe keeps its old lines", func(t *testing.T) {
		saved, err := svc.SaveRecipe(ctx, smelt())
		require.NoError(t, err)

		store.FailOn("InsertCost", errStore)
		defer store.FailOn("InsertCost", nil)

		edited := saved
		edited.Name = "Broken"
		edited.Costs = []domain.CraftingCost{{ItemID: 2, Amount: 9, Remove: false}}
		_, err = svc.SaveRecipe(ctx, edited)
		require.ErrorIs(t, err, domain.ErrRecipeSaveFailed)

		stored, _ := store.RecipeByID(saved.ID)
		assert.Equal(t, "Smelt Iron Ingot", stored.Name)
		assert.Len(t, stored.Costs, 2)
	})
}

func TestSaveRecipe_RejectsInvalidPayloads(t *testing.T) {
	_, svc, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *domain.Recipe)
		wantErr error
	}{
		{"unknown item", func(r *domain.Recipe) { r.Costs[0].ItemID = 999 }, domain.ErrItemNotFound},
		{"zero amount", func(r *domain.Recipe) { r.Results[0].Amount = 0 }, domain.ErrInvalidInput},
		{"bad outcome", func(r *domain.Recipe) { r.Results[0].Type = "crit" }, domain.ErrInvalidInput},
		{"chance above range", func(r *domain.Recipe) { r.SuccessChance = 150 }, domain.ErrInvalidInput},
		{"blank name", func(r *domain.Recipe) { r.Name = " " }, domain.ErrInvalidInput},
		{"amount beyond column range", func(r *domain.Recipe) { r.Costs[0].Amount = domain.MaxStoredInt + 1 }, domain.ErrInvalidInput},
		{"item id beyond column range", func(r *domain.Recipe) { r.Results[0].ItemID = 1<<32 + 3 }, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := smelt()
			tt.mutate(&r)
			_, err := svc.SaveRecipe(ctx, r)
			assert.ErrorIs(t, err, domain.ErrRecipeSaveFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, svc.ListRecipes(ctx))

	t.Run("update does not fall back to defaults", func(t *testing.T) {
		store, svc, _ := setup(t)
		r := smelt()
		r.Category = "Refining"
		r.SuccessChance = 40
		saved, err := svc.SaveRecipe(ctx, r)
		require.NoError(t, err)

		for _, edit := range []func(r *domain.Recipe){
			func(r *domain.Recipe) { r.Category = "" },
			func(r *domain.Recipe) { r.SuccessChance = 0 },
		} {
			edited := saved
			edit(&edited)
			_, err := svc.SaveRecipe(ctx, edited)
			assert.ErrorIs(t, err, domain.ErrRecipeSaveFailed)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}

		stored, ok := store.RecipeByID(saved.ID)
		require.True(t, ok)
		assert.Equal(t, "Refining", stored.Category)
		assert.Equal(t, 40, stored.SuccessChance)
	})
}

func TestSaveRecipe_ConcurrentSavesSerialise(t *testing.T) {
	store, svc, _ := setup(t)
	ctx := context.Background()
	saved, err := svc.SaveRecipe(ctx, smelt())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r := saved
			r.Costs = []domain.CraftingCost{{ItemID: 1, Amount: n, Remove: true}}
			_, err := svc.SaveRecipe(ctx, r)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, _ := store.RecipeByID(saved.ID)
	assert.Len(t, stored.Costs, 1)
}

func TestDeleteRecipe_CascadesLines(t *testing.T) {
	store, svc, _ := setup(t)
	ctx := context.Background()

	saved, err := svc.SaveRecipe(ctx, smelt())
	require.NoError(t, err)
	require.Len(t, svc.ListRecipes(ctx), 1)

	require.NoError(t, svc.DeleteRecipe(ctx, saved.ID))

	_, ok := store.RecipeByID(saved.ID)
	assert.False(t, ok)
	assert.Empty(t, svc.ListRecipes(ctx))
}

func TestDeleteRecipe_Errors(t *testing.T) {
	store, svc, _ := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteRecipe(ctx, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, 42), domain.ErrRecipeNotFound)

	saved, err := svc.SaveRecipe(ctx, smelt())
	require.NoError(t, err)
	store.FailOn("DeleteRecipe", errStore)
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, saved.ID), errStore)

	stored, ok := store.RecipeByID(saved.ID)
	require.True(t, ok)
	assert.Len(t, stored.Costs, 2)
}

func TestListRecipes_DegradesToEmpty(t *testing.T) {
	store, svc, _ := setup(t)
	store.FailOn("ListRecipes", errStore)

	recipes := svc.ListRecipes(context.Background())
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestGetRecipe(t *testing.T) {
	_, svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.GetRecipe(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	saved, err := svc.SaveRecipe(ctx, smelt())
	require.NoError(t, err)
	got, err := svc.GetRecipe(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smelt Iron Ingot", got.Name)
}
