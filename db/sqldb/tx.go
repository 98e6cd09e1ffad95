package sqldb

import "context"

// Tx is a transaction bound to one connection.
// Rows from Query belong to the transaction and must be closed before Commit or Rollback.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PreparedStmt is a statement prepared once and run with different arguments.
type PreparedStmt interface {
	Exec(ctx context.Context, args ...any) (Result, error)
	Query(ctx context.Context, args ...any) (Rows, error)
	QueryRow(ctx context.Context, args ...any) Row
	Close() error
}
