package repository

import (
	"context"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// Ledger defines the interface for catalog and inventory persistence
type Ledger interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListInventory(ctx context.Context) ([]domain.InventoryRecord, error)
	// BeginTx starts a transaction for catalog and quantity writes
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// QuantityWriter writes on-hand quantities inside a transaction
type QuantityWriter interface {
	// GetAmountForUpdate returns the on-hand amount (0 if absent), locking the row where the store supports it
	GetAmountForUpdate(ctx context.Context, itemID int) (int, error)
	UpsertInventory(ctx context.Context, itemID, amount int) error
	DeleteInventory(ctx context.Context, itemID int) error
}

// LedgerTx defines the interface for ledger transactions
type LedgerTx interface {
	Tx
	QuantityWriter
	ItemExists(ctx context.Context, itemID int) (bool, error)
	// InsertItem stores a new item. A zero ID lets the store generate one.
	InsertItem(ctx context.Context, item domain.Item) (int, error)
	UpdateItem(ctx context.Context, item domain.Item) error
	DeleteItem(ctx context.Context, itemID int) (bool, error)
	CountItemReferences(ctx context.Context, itemID int) (int, error)
}
