package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftLedger_Go/internal/database/generated"
	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// txHelper wraps a pgx transaction with transaction-bound queries.
// It satisfies every repository transaction interface.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction and returns a txHelper for common operations.
// Use repository.SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &txHelper{
		tx: tx,
		q:  q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (h *txHelper) Commit(ctx context.Context) error {
	if err := h.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the transaction, reporting domain.ErrTxClosed after commit
func (h *txHelper) Rollback(ctx context.Context) error {
	err := h.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func toDomainItem(row generated.Item) domain.Item {
	return domain.Item{
		ID:       int(row.ID),
		Name:     row.Name,
		Price:    int(row.Price),
		Category: row.Category,
		Image:    textToPtr(row.Image),
	}
}

func toDomainCost(row generated.RecipeCost) domain.CraftingCost {
	return domain.CraftingCost{
		ID:       int(row.ID),
		RecipeID: int(row.RecipeID),
		ItemID:   int(row.ItemID),
		Amount:   int(row.Amount),
		Remove:   row.Remove,
	}
}

func toDomainResult(row generated.RecipeResult) domain.CraftingResult {
	return domain.CraftingResult{
		ID:       int(row.ID),
		RecipeID: int(row.RecipeID),
		ItemID:   int(row.ItemID),
		Amount:   int(row.Amount),
		Type:     domain.Outcome(row.Outcome),
	}
}

func toDomainRecipe(row generated.Recipe, costs []generated.RecipeCost, results []generated.RecipeResult) domain.Recipe {
	r := domain.Recipe{
		ID:            int(row.ID),
		Name:          row.Name,
		Category:      row.Category,
		SuccessChance: int(row.SuccessChance),
		Costs:         make([]domain.CraftingCost, 0, len(costs)),
		Results:       make([]domain.CraftingResult, 0, len(results)),
	}
	for _, c := range costs {
		r.Costs = append(r.Costs, toDomainCost(c))
	}
	for _, res := range results {
		r.Results = append(r.Results, toDomainResult(res))
	}
	return r
}
