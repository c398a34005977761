package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txHelper wraps a database/sql transaction.
// It satisfies every repository transaction interface.
type txHelper struct {
	tx *sql.Tx
}

// beginTx starts a write transaction. The DSN sets _txlock=immediate so the
// write lock is taken up front.
func beginTx(ctx context.Context, db *sql.DB) (*txHelper, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &txHelper{tx: tx}, nil
}

// Commit commits the transaction
func (h *txHelper) Commit(_ context.Context) error {
	if err := h.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the transaction, reporting domain.ErrTxClosed after commit
func (h *txHelper) Rollback(_ context.Context) error {
	err := h.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return domain.ErrTxClosed
	}
	return err
}
