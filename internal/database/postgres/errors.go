package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError converts constraint violations into domain errors
func mapWriteError(err error, itemID int) error {
	switch pgErrorCode(err) {
	case PgErrorCodeForeignKeyViolation:
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	case PgErrorCodeUniqueViolation:
		return fmt.Errorf("%w: duplicate id %d", domain.ErrInvalidInput, itemID)
	default:
		return err
	}
}
