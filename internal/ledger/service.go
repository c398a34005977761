package ledger

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/event"
	"github.com/osse101/CraftLedger_Go/internal/logger"
	"github.com/osse101/CraftLedger_Go/internal/repository"
	"github.com/osse101/CraftLedger_Go/internal/validation"
)

// Service defines the catalog and inventory operations
type Service interface {
	// ListItems returns the full catalog. Storage failures degrade to an empty list.
	ListItems(ctx context.Context) []domain.Item
	// ListInventory returns all on-hand records. Storage failures degrade to an empty list.
	ListInventory(ctx context.Context) []domain.InventoryRecord
	UpsertItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, itemID int) error
	SetQuantity(ctx context.Context, itemID, amount int) error
	Valuation(ctx context.Context) Valuation
}

type service struct {
	repo  repository.Ledger
	cache *cache.QueryCache
	bus   event.Bus
}

// NewService creates a ledger service. cache and bus may be nil.
func NewService(repo repository.Ledger, c *cache.QueryCache, bus event.Bus) Service {
	return &service{
		repo:  repo,
		cache: c,
		bus:   bus,
	}
}

func (s *service) ListItems(ctx context.Context) []domain.Item {
	if items, ok := cache.Get[[]domain.Item](s.cache, cache.KeyItems); ok {
		return slices.Clone(items)
	}

	gen := s.cache.Generation()
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListItemsFailed, "error", err)
		return []domain.Item{}
	}
	if items == nil {
		items = []domain.Item{}
	}
	s.cache.SetIfCurrent(cache.KeyItems, slices.Clone(items), gen)
	return items
}

func (s *service) ListInventory(ctx context.Context) []domain.InventoryRecord {
	if records, ok := cache.Get[[]domain.InventoryRecord](s.cache, cache.KeyInventory); ok {
		return slices.Clone(records)
	}

	gen := s.cache.Generation()
	records, err := s.repo.ListInventory(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListInventoryFailed, "error", err)
		return []domain.InventoryRecord{}
	}
	if records == nil {
		records = []domain.InventoryRecord{}
	}
	s.cache.SetIfCurrent(cache.KeyInventory, slices.Clone(records), gen)
	return records
}

// UpsertItem inserts a new item (ID 0 gets a generated ID, an unknown ID is kept)
// or overwrites the scalars of an existing one.
func (s *service) UpsertItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := validation.Struct(item); err != nil {
		return domain.Item{}, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return domain.Item{}, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	exists := false
	if !item.IsNew() {
		if exists, err = tx.ItemExists(ctx, item.ID); err != nil {
			return domain.Item{}, err
		}
	}

	if exists {
		if err := tx.UpdateItem(ctx, item); err != nil {
			return domain.Item{}, err
		}
	} else {
		id, err := tx.InsertItem(ctx, item)
		if err != nil {
			return domain.Item{}, err
		}
		item.ID = id
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Item{}, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	s.cache.Invalidate(cache.KeyItems)
	logger.FromContext(ctx).Info(LogMsgItemSaved, "item_id", item.ID, "created", !exists)
	event.PublishAfterCommit(ctx, s.bus, event.NewItemChangedEvent(item.ID, domain.ActionSaved))
	return item, nil
}

// DeleteItem removes the item's inventory record and then the item, in one
// transaction. Items still referenced by recipe lines are rejected.
func (s *service) DeleteItem(ctx context.Context, itemID int) error {
	if !domain.ValidID(itemID) {
		return fmt.Errorf("%w: item id out of range", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	refs, err := tx.CountItemReferences(ctx, itemID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: item %d has %d recipe lines", domain.ErrItemInUse, itemID, refs)
	}

	if err := tx.DeleteInventory(ctx, itemID); err != nil {
		return err
	}
	found, err := tx.DeleteItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	s.cache.Invalidate(cache.KeyItems, cache.KeyInventory)
	logger.FromContext(ctx).Info(LogMsgItemDeleted, "item_id", itemID)
	event.PublishAfterCommit(ctx, s.bus, event.NewItemChangedEvent(itemID, domain.ActionDeleted))
	return nil
}

// SetQuantity overwrites the on-hand amount. amount <= 0 removes the record
// and is a no-op when none exists.
func (s *service) SetQuantity(ctx context.Context, itemID, amount int) error {
	if !domain.ValidID(itemID) {
		return fmt.Errorf("%w: item id out of range", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if amount > 0 {
		exists, err := tx.ItemExists(ctx, itemID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
		}
	}

	if err := Apply(ctx, tx, itemID, amount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	stored := max(amount, 0)
	s.cache.Invalidate(cache.KeyInventory)
	logger.FromContext(ctx).Debug(LogMsgQuantitySet, "item_id", itemID, "amount", stored)
	event.PublishAfterCommit(ctx, s.bus, event.NewInventoryChangedEvent(itemID, stored))
	return nil
}
