// Package rpc exposes the ledger, recipe and crafting services through a
// single method-name + JSON-payload call contract.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/osse101/CraftLedger_Go/internal/crafting"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
)

// ErrUnknownMethod is returned for a method name with no registered handler
var ErrUnknownMethod = errors.New(ErrMsgUnknownMethod)

// MethodFunc handles one call. params is the raw JSON payload, possibly empty.
type MethodFunc func(ctx context.Context, params json.RawMessage) (any, error)

// Dispatcher routes calls to registered methods
type Dispatcher struct {
	methods map[string]MethodFunc
}

// Services bundles the services the call contract exposes
type Services struct {
	Ledger   ledger.Service
	Recipes  recipe.Service
	Crafting crafting.Service
	// Version reports build information for app.version
	Version func() any
}

// NewDispatcher registers every method of the call contract
func NewDispatcher(svc Services) *Dispatcher {
	d := &Dispatcher{methods: make(map[string]MethodFunc)}

	d.Register(MethodItemsList, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return svc.Ledger.ListItems(ctx), nil
	})
	d.Register(MethodItemsSave, func(ctx context.Context, params json.RawMessage) (any, error) {
		var item domain.Item
		if err := decodeParams(params, &item); err != nil {
			return nil, err
		}
		if _, err := svc.Ledger.UpsertItem(ctx, item); err != nil {
			return nil, err
		}
		return true, nil
	})
	d.Register(MethodItemsDelete, func(ctx context.Context, params json.RawMessage) (any, error) {
		id, err := decodeID(params, "id")
		if err != nil {
			return nil, err
		}
		if err := svc.Ledger.DeleteItem(ctx, id); err != nil {
			return nil, err
		}
		return true, nil
	})

	d.Register(MethodInventoryList, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return svc.Ledger.ListInventory(ctx), nil
	})
	d.Register(MethodInventorySetQuantity, func(ctx context.Context, params json.RawMessage) (any, error) {
		var p struct {
			ItemID int `json:"itemId"`
			Amount int `json:"amount"`
		}
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		if err := svc.Ledger.SetQuantity(ctx, p.ItemID, p.Amount); err != nil {
			return nil, err
		}
		return true, nil
	})
	d.Register(MethodInventoryValue, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return svc.Ledger.Valuation(ctx), nil
	})

	d.Register(MethodRecipesList, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return svc.Recipes.ListRecipes(ctx), nil
	})
	d.Register(MethodRecipesSave, func(ctx context.Context, params json.RawMessage) (any, error) {
		var r domain.Recipe
		if err := decodeParams(params, &r); err != nil {
			return nil, err
		}
		if _, err := svc.Recipes.SaveRecipe(ctx, r); err != nil {
			return nil, err
		}
		return true, nil
	})
	d.Register(MethodRecipesDelete, func(ctx context.Context, params json.RawMessage) (any, error) {
		id, err := decodeID(params, "id")
		if err != nil {
			return nil, err
		}
		if err := svc.Recipes.DeleteRecipe(ctx, id); err != nil {
			return nil, err
		}
		return true, nil
	})

	d.Register(MethodCraftCheck, func(ctx context.Context, params json.RawMessage) (any, error) {
		id, err := decodeID(params, "recipeId")
		if err != nil {
			return nil, err
		}
		return svc.Crafting.Check(ctx, id)
	})
	d.Register(MethodCraftResolve, func(ctx context.Context, params json.RawMessage) (any, error) {
		var p struct {
			RecipeID int    `json:"recipeId"`
			Outcome  string `json:"outcome"`
		}
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		outcome, err := domain.ParseOutcome(p.Outcome)
		if err != nil {
			return nil, err
		}
		return svc.Crafting.Resolve(ctx, p.RecipeID, outcome)
	})

	if svc.Version != nil {
		d.Register(MethodAppVersion, func(context.Context, json.RawMessage) (any, error) {
			return svc.Version(), nil
		})
	}

	return d
}

// Register adds or replaces a method
func (d *Dispatcher) Register(name string, fn MethodFunc) {
	d.methods[name] = fn
}

// Methods returns the registered method names, sorted
func (d *Dispatcher) Methods() []string {
	names := make([]string, 0, len(d.methods))
	for name := range d.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes method with params. Legacy channel names are accepted.
func (d *Dispatcher) Call(ctx context.Context, method string, params json.RawMessage) (any, error) {
	if alias, ok := legacyAliases[method]; ok {
		method = alias
	}
	fn, ok := d.methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return fn(ctx, params)
}

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 || string(params) == "null" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingParams)
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidParams, err)
	}
	return nil
}

// decodeID accepts either a bare number or an object carrying the id under field
func decodeID(params json.RawMessage, field string) (int, error) {
	var id int
	if err := json.Unmarshal(params, &id); err == nil {
		return validID(id)
	}
	var obj map[string]json.RawMessage
	if err := decodeParams(params, &obj); err != nil {
		return 0, err
	}
	raw, ok := obj[field]
	if !ok {
		return 0, fmt.Errorf("%w: %s: missing %s", domain.ErrInvalidInput, ErrMsgInvalidParams, field)
	}
	if err := json.Unmarshal(raw, &id); err != nil {
		return 0, fmt.Errorf("%w: %s: %s must be an integer", domain.ErrInvalidInput, ErrMsgInvalidParams, field)
	}
	return validID(id)
}

func validID(id int) (int, error) {
	if !domain.ValidID(id) {
		return 0, fmt.Errorf("%w: %s: id out of range", domain.ErrInvalidInput, ErrMsgInvalidParams)
	}
	return id, nil
}
