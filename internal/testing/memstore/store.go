// Package memstore is an in-memory store with transaction semantics, used by
// service tests in place of a database.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

type state struct {
	items      map[int]domain.Item
	inventory  map[int]int
	recipes    map[int]domain.Recipe
	nextItem   int
	nextRecipe int
	nextLine   int
}

func (s *state) clone() *state {
	c := &state{
		items:      make(map[int]domain.Item, len(s.items)),
		inventory:  make(map[int]int, len(s.inventory)),
		recipes:    make(map[int]domain.Recipe, len(s.recipes)),
		nextItem:   s.nextItem,
		nextRecipe: s.nextRecipe,
		nextLine:   s.nextLine,
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	for k, v := range s.recipes {
		c.recipes[k] = cloneRecipe(v)
	}
	return c
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Costs = append([]domain.CraftingCost(nil), r.Costs...)
	r.Results = append([]domain.CraftingResult(nil), r.Results...)
	return r
}

// Store holds committed state. Transactions work on a private copy and
// replace the committed state on Commit. Only one transaction runs at a time.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data *state

	failMu sync.Mutex
	fail   map[string]error

	commits int
}

// New creates an empty store
func New() *Store {
	return &Store{
		data: &state{
			items:     map[int]domain.Item{},
			inventory: map[int]int{},
			recipes:   map[int]domain.Recipe{},
		},
		fail: map[string]error{},
	}
}

// FailOn makes the named operation return err until cleared with a nil err.
// Names are the repository method names, e.g. "InsertResult" or "ListItems".
func (s *Store) FailOn(op string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	if err == nil {
		delete(s.fail, op)
		return
	}
	s.fail[op] = err
}

func (s *Store) check(op string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	return s.fail[op]
}

// Commits returns how many transactions committed
func (s *Store) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

// PutItem stores an item directly, bypassing transactions
func (s *Store) PutItem(item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.items[item.ID] = item
	if item.ID > s.data.nextItem {
		s.data.nextItem = item.ID
	}
}

// PutAmount sets an on-hand amount directly, bypassing transactions
func (s *Store) PutAmount(itemID, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount <= 0 {
		delete(s.data.inventory, itemID)
		return
	}
	s.data.inventory[itemID] = amount
}

// PutRecipe stores a recipe directly, bypassing transactions
func (s *Store) PutRecipe(r domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range r.Costs {
		r.Costs[i].RecipeID = r.ID
	}
	for i := range r.Results {
		r.Results[i].RecipeID = r.ID
	}
	s.data.recipes[r.ID] = cloneRecipe(r)
	if r.ID > s.data.nextRecipe {
		s.data.nextRecipe = r.ID
	}
}

// Snapshot returns the committed on-hand amounts
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(domain.Snapshot, len(s.data.inventory))
	for k, v := range s.data.inventory {
		snap[k] = v
	}
	return snap
}

// Item returns a committed item
func (s *Store) Item(id int) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.data.items[id]
	return it, ok
}

// RecipeByID returns a committed recipe
func (s *Store) RecipeByID(id int) (domain.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.data.recipes[id]
	return cloneRecipe(r), ok
}

// ListItems implements the catalog read
func (s *Store) ListItems(_ context.Context) ([]domain.Item, error) {
	if err := s.check("ListItems"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listItems(s.data), nil
}

// ListInventory implements the inventory read
func (s *Store) ListInventory(_ context.Context) ([]domain.InventoryRecord, error) {
	if err := s.check("ListInventory"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listInventory(s.data), nil
}

// ListRecipes implements the recipe read
func (s *Store) ListRecipes(_ context.Context) ([]domain.Recipe, error) {
	if err := s.check("ListRecipes"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.data.recipes))
	for id := range s.data.recipes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]domain.Recipe, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneRecipe(s.data.recipes[id]))
	}
	return out, nil
}

// GetRecipe implements the single recipe read
func (s *Store) GetRecipe(_ context.Context, recipeID int) (*domain.Recipe, error) {
	if err := s.check("GetRecipe"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getRecipe(s.data, recipeID)
}

// Reset clears all data and identity counters
func (s *Store) Reset(_ context.Context) error {
	if err := s.check("Reset"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = New().data
	return nil
}

func (s *Store) begin() (*Tx, error) {
	if err := s.check("BeginTx"); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()
	return &Tx{store: s, data: work}, nil
}

// Ledger returns the store as a repository.Ledger
func (s *Store) Ledger() repository.Ledger { return ledgerView{s} }

// Recipes returns the store as a repository.Recipe
func (s *Store) Recipes() repository.Recipe { return recipeView{s} }

// Crafting returns the store as a repository.Crafting
func (s *Store) Crafting() repository.Crafting { return craftingView{s} }

type ledgerView struct{ *Store }

func (v ledgerView) BeginTx(context.Context) (repository.LedgerTx, error) { return v.begin() }

type recipeView struct{ *Store }

func (v recipeView) BeginTx(context.Context) (repository.RecipeTx, error) { return v.begin() }

type craftingView struct{ *Store }

func (v craftingView) BeginTx(context.Context) (repository.CraftingTx, error) { return v.begin() }

func listItems(d *state) []domain.Item {
	out := make([]domain.Item, 0, len(d.items))
	for _, it := range d.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func listInventory(d *state) []domain.InventoryRecord {
	out := make([]domain.InventoryRecord, 0, len(d.inventory))
	for id, amt := range d.inventory {
		out = append(out, domain.InventoryRecord{ItemID: id, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func getRecipe(d *state, recipeID int) (*domain.Recipe, error) {
	r, ok := d.recipes[recipeID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}
	c := cloneRecipe(r)
	return &c, nil
}
