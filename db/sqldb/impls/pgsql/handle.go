package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zeptools/gw-dbconn/db/sqldb"
)

type Handle struct {
	*pgxpool.Pool // [Embedded]
}

var _ sqldb.Handle = (*Handle)(nil)

func (h *Handle) Exec(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	tag, err := h.Pool.Exec(ctx, query, args...)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (h *Handle) QueryRows(ctx context.Context, query string, args ...any) (sqldb.Rows, error) {
	rows, err := h.Pool.Query(ctx, query, args...)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	if err != nil {
		return nil, err
	}
	return &Rows{
		conn:    nil, // Pool manages connection, no need to release here
		current: rows,
		batch:   nil, // single query, no batch
	}, nil
}

// QueryBatch sends every query in one round trip; the returned Rows walks
// their result sets in order via NextResultSet.
func (h *Handle) QueryBatch(ctx context.Context, queries ...string) (sqldb.Rows, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("QueryBatch needs at least one query")
	}
	conn, err := h.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	b := &pgx.Batch{}
	for _, q := range queries {
		b.Queue(q)
	}
	results := conn.SendBatch(ctx, b)
	first, err := results.Query()
	if err != nil {
		_ = results.Close()
		conn.Release()
		return nil, err
	}
	return &Rows{conn: conn, current: first, batch: results, pending: len(queries) - 1}, nil
}

func (h *Handle) QueryRow(ctx context.Context, query string, args ...any) sqldb.Row {
	row := h.Pool.QueryRow(ctx, query, args...)
	return &Row{row: row}
}

// CopyFrom uses the COPY protocol. table may be schema qualified.
func (h *Handle) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if _, err := sqldb.NewColumn(table); err != nil {
		return 0, err
	}
	src := pgx.CopyFromRows(rows)
	count, err := h.Pool.CopyFrom(ctx, pgx.Identifier(strings.Split(table, ".")), columns, src)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	return count, err
}

func (h *Handle) InsertStmt(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "INSERT") {
		return nil, fmt.Errorf("InsertStmt must start with INSERT")
	}
	// append RETURNING id if missing
	if !strings.Contains(strings.ToUpper(query), "RETURNING") {
		query += " RETURNING id"
		var id int64
		err := h.Pool.QueryRow(ctx, query, args...).Scan(&id)
		if err != nil {
			return nil, err
		}
		return &Result{lastInsertID: id, rowsAffected: 1}, nil
	}

	tag, err := h.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (h *Handle) Prepare(ctx context.Context, query string) (sqldb.PreparedStmt, error) {
	conn, err := h.Pool.Acquire(ctx)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	if err != nil {
		return nil, err
	}
	stmtName := "stmt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = conn.Conn().Prepare(ctx, stmtName, query)
	if err != nil {
		conn.Release()
		return nil, err
	}
	return &PreparedStmt{conn: conn, stmtName: stmtName}, nil
}
