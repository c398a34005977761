package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftLedger_Go/internal/database"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedItems(t *testing.T, db *sql.DB, items ...domain.Item) {
	t.Helper()
	ctx := context.Background()
	tx, err := NewLedgerRepository(db).BeginTx(ctx)
	require.NoError(t, err)
	for _, it := range items {
		_, err := tx.InsertItem(ctx, it)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit(ctx))
}

func TestLedgerRepository_InsertAndList(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(db)
	img := "ore.png"

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	id, err := tx.InsertItem(ctx, domain.Item{Name: "Iron Ore", Price: 10, Category: "Material", Image: &img})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	explicit, err := tx.InsertItem(ctx, domain.Item{ID: 40, Name: "Coal", Price: 5, Category: "Fuel"})
	require.NoError(t, err)
	assert.Equal(t, 40, explicit)
	next, err := tx.InsertItem(ctx, domain.Item{Name: "Stick", Price: 2, Category: "Material"})
	require.NoError(t, err)
	assert.Equal(t, 41, next)
	require.NoError(t, tx.Commit(ctx))

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.NotNil(t, items[0].Image)
	assert.Equal(t, "ore.png", *items[0].Image)
	assert.Nil(t, items[1].Image)
}

func TestLedgerRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(db)
	seedItems(t, db, domain.Item{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"})

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpdateItem(ctx, domain.Item{ID: 1, Name: "Rich Iron Ore", Price: 12, Category: "Material"}))
	assert.ErrorIs(t, tx.UpdateItem(ctx, domain.Item{ID: 9, Name: "x", Category: "y"}), domain.ErrItemNotFound)
	require.NoError(t, tx.UpsertInventory(ctx, 1, 4))
	require.NoError(t, tx.Commit(ctx))

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rich Iron Ore", items[0].Name)
	assert.Equal(t, 12, items[0].Price)

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.DeleteInventory(ctx, 1))
	found, err := tx.DeleteItem(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = tx.DeleteItem(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, tx.Commit(ctx))

	inv, err := repo.ListInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, inv)
}

func TestLedgerRepository_UpsertInventoryOverwrites(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(db)
	seedItems(t, db, domain.Item{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"})

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpsertInventory(ctx, 1, 20))
	require.NoError(t, tx.UpsertInventory(ctx, 1, 3))
	amount, err := tx.GetAmountForUpdate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, amount)
	absent, err := tx.GetAmountForUpdate(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, absent)
	require.NoError(t, tx.Commit(ctx))

	inv, err := repo.ListInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryRecord{{ItemID: 1, Amount: 3}}, inv)
}

func TestLedgerRepository_RollbackDiscards(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(db)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.InsertItem(ctx, domain.Item{Name: "Iron Ore", Price: 10, Category: "Material"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))
	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecipeRepository_LinesAndCascade(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedItems(t, db,
		domain.Item{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"},
		domain.Item{ID: 2, Name: "Coal", Price: 5, Category: "Fuel"},
		domain.Item{ID: 3, Name: "Iron Ingot", Price: 30, Category: "Material"},
		domain.Item{ID: 6, Name: "Scrap Metal", Price: 1, Category: "Junk"},
	)
	repo := NewRecipeRepository(db)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	missing, err := tx.MissingItemIDs(ctx, []int{1, 5, 6, 8})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 8}, missing)

	id, err := tx.InsertRecipe(ctx, domain.Recipe{Name: "Smelt Iron Ingot", Category: "Refining", SuccessChance: 80})
	require.NoError(t, err)
	require.NoError(t, tx.InsertCost(ctx, id, domain.CraftingCost{ItemID: 1, Amount: 2, Remove: true}))
	require.NoError(t, tx.InsertCost(ctx, id, domain.CraftingCost{ItemID: 2, Amount: 1, Remove: false}))
	require.NoError(t, tx.InsertResult(ctx, id, domain.CraftingResult{ItemID: 3, Amount: 1, Type: domain.OutcomeSuccess}))
	require.NoError(t, tx.InsertResult(ctx, id, domain.CraftingResult{ItemID: 6, Amount: 1, Type: domain.OutcomeFail}))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Smelt Iron Ingot", got.Name)
	assert.Equal(t, 80, got.SuccessChance)
	require.Len(t, got.Costs, 2)
	assert.True(t, got.Costs[0].Remove)
	assert.False(t, got.Costs[1].Remove)
	require.Len(t, got.Results, 2)
	assert.Equal(t, domain.OutcomeFail, got.Results[1].Type)

	ledgerTx, err := NewLedgerRepository(db).BeginTx(ctx)
	require.NoError(t, err)
	refs, err := ledgerTx.CountItemReferences(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, refs)
	repository.SafeRollback(ctx, ledgerTx)

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.DeleteRecipeLines(ctx, id))
	deleted, err := tx.DeleteRecipe(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, tx.Commit(ctx))

	var orphans int
	require.NoError(t, db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM recipe_costs) + (SELECT COUNT(*) FROM recipe_results)`).Scan(&orphans))
	assert.Zero(t, orphans)

	_, err = repo.GetRecipe(ctx, id)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeRepository_ListJoinsLines(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedItems(t, db,
		domain.Item{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"},
		domain.Item{ID: 3, Name: "Iron Ingot", Price: 30, Category: "Material"},
	)
	repo := NewRecipeRepository(db)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	a, err := tx.InsertRecipe(ctx, domain.Recipe{Name: "A", Category: "General", SuccessChance: 100})
	require.NoError(t, err)
	b, err := tx.InsertRecipe(ctx, domain.Recipe{Name: "B", Category: "General", SuccessChance: 100})
	require.NoError(t, err)
	require.NoError(t, tx.InsertCost(ctx, a, domain.CraftingCost{ItemID: 1, Amount: 1, Remove: true}))
	require.NoError(t, tx.InsertResult(ctx, b, domain.CraftingResult{ItemID: 3, Amount: 2, Type: domain.OutcomeSuccess}))
	require.NoError(t, tx.Commit(ctx))

	recipes, err := repo.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Len(t, recipes[0].Costs, 1)
	assert.Empty(t, recipes[0].Results)
	assert.Empty(t, recipes[1].Costs)
	assert.Len(t, recipes[1].Results, 1)
	assert.NotNil(t, recipes[1].Costs, "empty lines encode as [] not null")
}

func TestCraftingRepository_ReadsInsideTx(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedItems(t, db, domain.Item{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"})
	repo := NewCraftingRepository(db)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.GetRecipe(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	require.NoError(t, tx.UpsertInventory(ctx, 1, 2))
	amount, err := tx.GetAmountForUpdate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, amount)
}

func TestMaintenanceRepository_Reset(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedItems(t, db, domain.Item{ID: 7, Name: "Money", Price: 1, Category: "Money"})

	require.NoError(t, NewMaintenanceRepository(db).Reset(ctx))

	items, err := NewLedgerRepository(db).ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	seedItems(t, db, domain.Item{Name: "Coal", Price: 5, Category: "Fuel"})
	items, err = NewLedgerRepository(db).ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID, "id counter restarts after reset")
}
