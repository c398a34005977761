package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/repository"
)

// Apply sets the on-hand amount for itemID to exactly amount.
// amount <= 0 removes the record, so a stored record is always positive.
func Apply(ctx context.Context, w repository.QuantityWriter, itemID, amount int) error {
	if amount > domain.MaxStoredInt {
		return fmt.Errorf("%w: quantity %d for item %d exceeds %d",
			domain.ErrInvalidInput, amount, itemID, domain.MaxStoredInt)
	}
	if amount <= 0 {
		if err := w.DeleteInventory(ctx, itemID); err != nil {
			return fmt.Errorf("failed to clear quantity for item %d: %w", itemID, err)
		}
		return nil
	}
	if err := w.UpsertInventory(ctx, itemID, amount); err != nil {
		return fmt.Errorf("failed to set quantity for item %d: %w", itemID, err)
	}
	return nil
}

// Adjust adds delta to the current amount of itemID and reports the change.
// A result below zero fails with domain.ErrInsufficientMaterials and writes nothing.
func Adjust(ctx context.Context, w repository.QuantityWriter, itemID, delta int) (domain.QuantityChange, error) {
	before, err := w.GetAmountForUpdate(ctx, itemID)
	if err != nil {
		return domain.QuantityChange{}, fmt.Errorf("failed to read quantity for item %d: %w", itemID, err)
	}

	after := before + delta
	if after < 0 {
		return domain.QuantityChange{}, fmt.Errorf("%w: item %d needs %d, has %d",
			domain.ErrInsufficientMaterials, itemID, -delta, before)
	}

	if err := Apply(ctx, w, itemID, after); err != nil {
		return domain.QuantityChange{}, err
	}
	return domain.QuantityChange{ItemID: itemID, Before: before, After: after}, nil
}
