package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftLedger_Go/internal/database/generated"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL using sqlc
type LedgerRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// ListItems retrieves the full catalog
func (r *LedgerRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = toDomainItem(row)
	}
	return items, nil
}

// ListInventory retrieves every on-hand record
func (r *LedgerRepository) ListInventory(ctx context.Context) ([]domain.InventoryRecord, error) {
	return listInventory(ctx, r.q)
}

// BeginTx starts a ledger transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	return beginTx(ctx, r.pool, r.q)
}

func listInventory(ctx context.Context, q *generated.Queries) ([]domain.InventoryRecord, error) {
	rows, err := q.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	records := make([]domain.InventoryRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.InventoryRecord{ItemID: int(row.ItemID), Amount: int(row.Amount)}
	}
	return records, nil
}

// ItemExists reports whether a catalog entry exists
func (h *txHelper) ItemExists(ctx context.Context, itemID int) (bool, error) {
	exists, err := h.q.ItemExists(ctx, int32(itemID))
	if err != nil {
		return false, fmt.Errorf("failed to check item: %w", err)
	}
	return exists, nil
}

// InsertItem inserts a catalog entry, keeping the id sequence ahead of explicit ids
func (h *txHelper) InsertItem(ctx context.Context, item domain.Item) (int, error) {
	if item.ID == 0 {
		id, err := h.q.InsertItem(ctx, generated.InsertItemParams{
			Name:     item.Name,
			Price:    int32(item.Price),
			Category: item.Category,
			Image:    ptrToText(item.Image),
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert item: %w", err)
		}
		return int(id), nil
	}

	err := h.q.InsertItemWithID(ctx, generated.InsertItemWithIDParams{
		ID:       int32(item.ID),
		Name:     item.Name,
		Price:    int32(item.Price),
		Category: item.Category,
		Image:    ptrToText(item.Image),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert item %d: %w", item.ID, mapWriteError(err, item.ID))
	}
	if err := h.q.SyncItemSequence(ctx); err != nil {
		return 0, fmt.Errorf("failed to sync item sequence: %w", err)
	}
	return item.ID, nil
}

// UpdateItem overwrites the mutable fields of an existing item
func (h *txHelper) UpdateItem(ctx context.Context, item domain.Item) error {
	n, err := h.q.UpdateItem(ctx, generated.UpdateItemParams{
		ID:       int32(item.ID),
		Name:     item.Name,
		Price:    int32(item.Price),
		Category: item.Category,
		Image:    ptrToText(item.Image),
	})
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteItem removes a catalog entry and reports whether it existed
func (h *txHelper) DeleteItem(ctx context.Context, itemID int) (bool, error) {
	n, err := h.q.DeleteItem(ctx, int32(itemID))
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return n > 0, nil
}

// CountItemReferences counts recipe lines that reference the item
func (h *txHelper) CountItemReferences(ctx context.Context, itemID int) (int, error) {
	n, err := h.q.CountItemReferences(ctx, int32(itemID))
	if err != nil {
		return 0, fmt.Errorf("failed to count item references: %w", err)
	}
	return int(n), nil
}

// MissingItemIDs returns the ids that have no catalog entry
func (h *txHelper) MissingItemIDs(ctx context.Context, itemIDs []int) ([]int, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	ids := make([]int32, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = int32(id)
	}

	rows, err := h.q.ListMissingItemIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check item ids: %w", err)
	}

	missing := make([]int, len(rows))
	for i, id := range rows {
		missing[i] = int(id)
	}
	return missing, nil
}

// GetAmountForUpdate locks and returns the on-hand amount, zero if absent
func (h *txHelper) GetAmountForUpdate(ctx context.Context, itemID int) (int, error) {
	amount, err := h.q.GetAmountForUpdate(ctx, int32(itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get inventory amount: %w", err)
	}
	return int(amount), nil
}

// UpsertInventory sets the on-hand amount for an item
func (h *txHelper) UpsertInventory(ctx context.Context, itemID, amount int) error {
	err := h.q.UpsertInventory(ctx, generated.UpsertInventoryParams{
		ItemID: int32(itemID),
		Amount: int32(amount),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert inventory: %w", mapWriteError(err, itemID))
	}
	return nil
}

// DeleteInventory removes the on-hand record for an item, if any
func (h *txHelper) DeleteInventory(ctx context.Context, itemID int) error {
	if err := h.q.DeleteInventory(ctx, int32(itemID)); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}
