package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zeptools/gw-dbconn/db/sqldb"
)

// PreparedStmt pins one pooled connection until Close.
type PreparedStmt struct {
	conn     *pgxpool.Conn
	stmtName string
}

var _ sqldb.PreparedStmt = (*PreparedStmt)(nil)

func (p *PreparedStmt) Query(ctx context.Context, args ...any) (sqldb.Rows, error) {
	rows, err := p.conn.Query(ctx, p.stmtName, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{current: rows}, nil
}

func (p *PreparedStmt) Exec(ctx context.Context, args ...any) (sqldb.Result, error) {
	tag, err := p.conn.Exec(ctx, p.stmtName, args...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (p *PreparedStmt) QueryRow(ctx context.Context, args ...any) sqldb.Row {
	return &Row{row: p.conn.QueryRow(ctx, p.stmtName, args...)}
}

// Close deallocates the statement and returns the connection to the pool.
func (p *PreparedStmt) Close() error {
	err := p.conn.Conn().Deallocate(context.Background(), p.stmtName)
	p.conn.Release()
	return err
}
