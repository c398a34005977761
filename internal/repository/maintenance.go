package repository

import "context"

// Maintenance defines destructive store-wide operations used by the setup tool
type Maintenance interface {
	Reset(ctx context.Context) error
}
