// Package seed loads a starter catalog of items, inventory and recipes.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/logger"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
	"github.com/osse101/CraftLedger_Go/internal/validation"
)

// SchemaName identifies the embedded seed schema in the validator
const SchemaName = "craftledger://seed.schema.json"

//go:embed schema/seed.schema.json
var schemaJSON []byte

// Document is the seed file layout
type Document struct {
	Items     []domain.Item            `json:"items"`
	Inventory []domain.InventoryRecord `json:"inventory"`
	Recipes   []domain.Recipe          `json:"recipes"`
}

// Summary counts what a load applied
type Summary struct {
	Items     int `json:"items"`
	Inventory int `json:"inventory"`
	Recipes   int `json:"recipes"`
}

// Loader applies seed documents through the public services
type Loader struct {
	ledger    ledger.Service
	recipes   recipe.Service
	validator validation.SchemaValidator
}

// NewLoader creates a loader with the embedded schema registered
func NewLoader(ledgerSvc ledger.Service, recipeSvc recipe.Service) (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to register seed schema: %w", err)
	}
	return &Loader{
		ledger:    ledgerSvc,
		recipes:   recipeSvc,
		validator: v,
	}, nil
}

// LoadFile reads and applies a seed file
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return l.Load(ctx, data)
}

// Load validates data against the seed schema, then applies items, inventory
// and recipes in that order. Loading the same document twice converges to
// the same state. Each write commits on its own, so a failure leaves the
// earlier writes in place.
func (l *Loader) Load(ctx context.Context, data []byte) (Summary, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.ValidateBytes(data, SchemaName); err != nil {
		return Summary{}, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Summary{}, fmt.Errorf("failed to decode seed document: %w", err)
	}

	var sum Summary
	for _, item := range doc.Items {
		if _, err := l.ledger.UpsertItem(ctx, item); err != nil {
			return sum, fmt.Errorf("failed to seed item %d: %w", item.ID, err)
		}
		sum.Items++
	}

	for _, rec := range doc.Inventory {
		if err := l.ledger.SetQuantity(ctx, rec.ItemID, rec.Amount); err != nil {
			return sum, fmt.Errorf("failed to seed quantity for item %d: %w", rec.ItemID, err)
		}
		sum.Inventory++
	}

	for _, r := range doc.Recipes {
		if _, err := l.recipes.SaveRecipe(ctx, r); err != nil {
			return sum, fmt.Errorf("failed to seed recipe %q: %w", r.Name, err)
		}
		sum.Recipes++
	}

	log.Info(LogMsgSeedApplied, "items", sum.Items, "inventory", sum.Inventory, "recipes", sum.Recipes)
	return sum, nil
}
