package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error

	// WithinTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Writes made by fn become visible all at once.
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
