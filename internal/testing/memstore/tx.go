package memstore

import (
	"context"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// Tx is a transaction over a private copy of the store
type Tx struct {
	store  *Store
	data   *state
	closed bool
}

func (t *Tx) op(name string) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return t.store.check(name)
}

// Commit publishes the transaction's copy as the committed state
func (t *Tx) Commit(_ context.Context) error {
	if err := t.op("Commit"); err != nil {
		return err
	}
	t.store.mu.Lock()
	t.store.data = t.data
	t.store.commits++
	t.store.mu.Unlock()
	t.closed = true
	t.store.txMu.Unlock()
	return nil
}

// Rollback discards the transaction's copy
func (t *Tx) Rollback(_ context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.store.txMu.Unlock()
	return nil
}

func (t *Tx) GetAmountForUpdate(_ context.Context, itemID int) (int, error) {
	if err := t.op("GetAmountForUpdate"); err != nil {
		return 0, err
	}
	return t.data.inventory[itemID], nil
}

func (t *Tx) UpsertInventory(_ context.Context, itemID, amount int) error {
	if err := t.op("UpsertInventory"); err != nil {
		return err
	}
	if _, ok := t.data.items[itemID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	t.data.inventory[itemID] = amount
	return nil
}

func (t *Tx) DeleteInventory(_ context.Context, itemID int) error {
	if err := t.op("DeleteInventory"); err != nil {
		return err
	}
	delete(t.data.inventory, itemID)
	return nil
}

func (t *Tx) ItemExists(_ context.Context, itemID int) (bool, error) {
	if err := t.op("ItemExists"); err != nil {
		return false, err
	}
	_, ok := t.data.items[itemID]
	return ok, nil
}

func (t *Tx) InsertItem(_ context.Context, item domain.Item) (int, error) {
	if err := t.op("InsertItem"); err != nil {
		return 0, err
	}
	if item.ID == 0 {
		t.data.nextItem++
		item.ID = t.data.nextItem
	} else if _, ok := t.data.items[item.ID]; ok {
		return 0, fmt.Errorf("%w: duplicate item id %d", domain.ErrInvalidInput, item.ID)
	} else if item.ID > t.data.nextItem {
		t.data.nextItem = item.ID
	}
	t.data.items[item.ID] = item
	return item.ID, nil
}

func (t *Tx) UpdateItem(_ context.Context, item domain.Item) error {
	if err := t.op("UpdateItem"); err != nil {
		return err
	}
	t.data.items[item.ID] = item
	return nil
}

func (t *Tx) DeleteItem(_ context.Context, itemID int) (bool, error) {
	if err := t.op("DeleteItem"); err != nil {
		return false, err
	}
	_, ok := t.data.items[itemID]
	delete(t.data.items, itemID)
	delete(t.data.inventory, itemID)
	return ok, nil
}

func (t *Tx) CountItemReferences(_ context.Context, itemID int) (int, error) {
	if err := t.op("CountItemReferences"); err != nil {
		return 0, err
	}
	n := 0
	for _, r := range t.data.recipes {
		for _, c := range r.Costs {
			if c.ItemID == itemID {
				n++
			}
		}
		for _, res := range r.Results {
			if res.ItemID == itemID {
				n++
			}
		}
	}
	return n, nil
}

func (t *Tx) GetRecipe(_ context.Context, recipeID int) (*domain.Recipe, error) {
	if err := t.op("GetRecipe"); err != nil {
		return nil, err
	}
	return getRecipe(t.data, recipeID)
}

func (t *Tx) RecipeExists(_ context.Context, recipeID int) (bool, error) {
	if err := t.op("RecipeExists"); err != nil {
		return false, err
	}
	_, ok := t.data.recipes[recipeID]
	return ok, nil
}

func (t *Tx) MissingItemIDs(_ context.Context, itemIDs []int) ([]int, error) {
	if err := t.op("MissingItemIDs"); err != nil {
		return nil, err
	}
	var missing []int
	for _, id := range itemIDs {
		if _, ok := t.data.items[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (t *Tx) InsertRecipe(_ context.Context, recipe domain.Recipe) (int, error) {
	if err := t.op("InsertRecipe"); err != nil {
		return 0, err
	}
	t.data.nextRecipe++
	id := t.data.nextRecipe
	t.data.recipes[id] = domain.Recipe{
		ID:            id,
		Name:          recipe.Name,
		Category:      recipe.Category,
		SuccessChance: recipe.SuccessChance,
	}
	return id, nil
}

func (t *Tx) UpdateRecipe(_ context.Context, recipe domain.Recipe) error {
	if err := t.op("UpdateRecipe"); err != nil {
		return err
	}
	cur, ok := t.data.recipes[recipe.ID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipe.ID)
	}
	cur.ID = recipe.ID
	cur.Name = recipe.Name
	cur.Category = recipe.Category
	cur.SuccessChance = recipe.SuccessChance
	t.data.recipes[recipe.ID] = cur
	return nil
}

func (t *Tx) DeleteRecipeLines(_ context.Context, recipeID int) error {
	if err := t.op("DeleteRecipeLines"); err != nil {
		return err
	}
	r, ok := t.data.recipes[recipeID]
	if !ok {
		return nil
	}
	r.Costs = nil
	r.Results = nil
	t.data.recipes[recipeID] = r
	return nil
}

func (t *Tx) InsertCost(_ context.Context, recipeID int, cost domain.CraftingCost) error {
	if err := t.op("InsertCost"); err != nil {
		return err
	}
	r, ok := t.data.recipes[recipeID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}
	t.data.nextLine++
	cost.ID = t.data.nextLine
	cost.RecipeID = recipeID
	r.Costs = append(r.Costs, cost)
	t.data.recipes[recipeID] = r
	return nil
}

func (t *Tx) InsertResult(_ context.Context, recipeID int, result domain.CraftingResult) error {
	if err := t.op("InsertResult"); err != nil {
		return err
	}
	r, ok := t.data.recipes[recipeID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}
	t.data.nextLine++
	result.ID = t.data.nextLine
	result.RecipeID = recipeID
	r.Results = append(r.Results, result)
	t.data.recipes[recipeID] = r
	return nil
}

func (t *Tx) DeleteRecipe(_ context.Context, recipeID int) (bool, error) {
	if err := t.op("DeleteRecipe"); err != nil {
		return false, err
	}
	_, ok := t.data.recipes[recipeID]
	delete(t.data.recipes, recipeID)
	return ok, nil
}
