package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger for SQLite
type LedgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// ListItems retrieves the full catalog
func (r *LedgerRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := queryAll(ctx, r.db, scanItem, `SELECT `+itemCols+` FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// ListInventory retrieves every on-hand record
func (r *LedgerRepository) ListInventory(ctx context.Context) ([]domain.InventoryRecord, error) {
	return listInventory(ctx, r.db)
}

// BeginTx starts a ledger transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	return beginTx(ctx, r.db)
}

func listInventory(ctx context.Context, q querier) ([]domain.InventoryRecord, error) {
	records, err := queryAll(ctx, q, func(s scanner) (domain.InventoryRecord, error) {
		var rec domain.InventoryRecord
		err := s.Scan(&rec.ItemID, &rec.Amount)
		return rec, err
	}, `SELECT item_id, amount FROM inventory ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return records, nil
}

// ItemExists reports whether a catalog entry exists
func (h *txHelper) ItemExists(ctx context.Context, itemID int) (bool, error) {
	var exists bool
	err := h.tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id = ?)`, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check item: %w", err)
	}
	return exists, nil
}

// InsertItem inserts a catalog entry. A zero ID lets SQLite assign one.
func (h *txHelper) InsertItem(ctx context.Context, item domain.Item) (int, error) {
	var (
		res sql.Result
		err error
	)
	if item.ID == 0 {
		res, err = h.tx.ExecContext(ctx,
			`INSERT INTO items (name, price, category, image) VALUES (?, ?, ?, ?)`,
			item.Name, item.Price, item.Category, nullString(item.Image))
	} else {
		res, err = h.tx.ExecContext(ctx,
			`INSERT INTO items (id, name, price, category, image) VALUES (?, ?, ?, ?, ?)`,
			item.ID, item.Name, item.Price, item.Category, nullString(item.Image))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read item id: %w", err)
	}
	return int(id), nil
}

// UpdateItem overwrites the mutable fields of an existing item
func (h *txHelper) UpdateItem(ctx context.Context, item domain.Item) error {
	res, err := h.tx.ExecContext(ctx,
		`UPDATE items SET name = ?, price = ?, category = ?, image = ? WHERE id = ?`,
		item.Name, item.Price, item.Category, nullString(item.Image), item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteItem removes a catalog entry and reports whether it existed
func (h *txHelper) DeleteItem(ctx context.Context, itemID int) (bool, error) {
	res, err := h.tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	return n > 0, nil
}

// CountItemReferences counts recipe lines that reference the item
func (h *txHelper) CountItemReferences(ctx context.Context, itemID int) (int, error) {
	var n int
	err := h.tx.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM recipe_costs WHERE item_id = ?) +
		(SELECT COUNT(*) FROM recipe_results WHERE item_id = ?)`, itemID, itemID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count item references: %w", err)
	}
	return n, nil
}

// MissingItemIDs returns the ids that have no catalog entry
func (h *txHelper) MissingItemIDs(ctx context.Context, itemIDs []int) ([]int, error) {
	var missing []int
	for _, id := range itemIDs {
		ok, err := h.ItemExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// GetAmountForUpdate returns the on-hand amount, zero if absent.
// The immediate transaction already holds the write lock.
func (h *txHelper) GetAmountForUpdate(ctx context.Context, itemID int) (int, error) {
	var amount int
	err := h.tx.QueryRowContext(ctx, `SELECT amount FROM inventory WHERE item_id = ?`, itemID).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get inventory amount: %w", err)
	}
	return amount, nil
}

// UpsertInventory sets the on-hand amount for an item
func (h *txHelper) UpsertInventory(ctx context.Context, itemID, amount int) error {
	_, err := h.tx.ExecContext(ctx,
		`INSERT INTO inventory (item_id, amount) VALUES (?, ?)
		 ON CONFLICT(item_id) DO UPDATE SET amount = excluded.amount`,
		itemID, amount)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory: %w", err)
	}
	return nil
}

// DeleteInventory removes the on-hand record for an item, if any
func (h *txHelper) DeleteInventory(ctx context.Context, itemID int) error {
	if _, err := h.tx.ExecContext(ctx, `DELETE FROM inventory WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}
