package stdsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

// maxCopyParams bounds the bind parameters of one emulated CopyFrom INSERT.
// 999 is the lowest limit among the supported engines (older sqlite builds).
const maxCopyParams = 999

// Handle serves sqldb.Handle on top of any database/sql driver.
// Prefix is the placeholder style of the driver, see sqldb.PlaceholderPrefixForDBType.
type Handle struct {
	DB     *sql.DB
	Prefix byte
}

// Ensure stdsql.Handle implements sqldb.Handle interface
var _ sqldb.Handle = (*Handle)(nil)

func (h *Handle) Exec(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	result, err := h.DB.ExecContext(ctx, query, args...)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	if err != nil {
		return nil, err
	}
	return &Result{result: result}, nil
}

func (h *Handle) QueryRows(ctx context.Context, query string, args ...any) (sqldb.Rows, error) {
	rows, err := h.DB.QueryContext(ctx, query, args...)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	if err != nil {
		return nil, err
	}
	return &Rows{rows: rows}, nil
}

func (h *Handle) QueryRow(ctx context.Context, query string, args ...any) sqldb.Row {
	row := h.DB.QueryRowContext(ctx, query, args...)
	return &Row{row: row}
}

// CopyFrom emulates a bulk copy with multi-row INSERT statements run in one transaction.
// table and columns must be valid identifiers.
func (h *Handle) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (n int64, err error) {
	if _, err := sqldb.NewColumn(table); err != nil {
		return 0, err
	}
	if len(columns) == 0 {
		return 0, errors.New("CopyFrom needs at least one column")
	}
	if _, err := sqldb.ColumnNames(columns); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	batch := max(1, maxCopyParams/len(columns))
	head := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES "
	gen := sqldb.PlaceholdersGF(h.Prefix)
	for start := 0; start < len(rows); start += batch {
		chunk := rows[start:min(start+batch, len(rows))]
		var b strings.Builder
		b.WriteString(head)
		args := make([]any, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if len(row) != len(columns) {
				return 0, fmt.Errorf("CopyFrom: row %d has %d values, want %d", start+i, len(row), len(columns))
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("(" + strings.Join(gen(len(columns), len(args)+1), ", ") + ")")
			args = append(args, row...)
		}
		res, err := tx.ExecContext(ctx, b.String(), args...)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			affected = int64(len(chunk))
		}
		n += affected
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (h *Handle) InsertStmt(ctx context.Context, query string, args ...any) (sqldb.Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "INSERT") {
		return nil, fmt.Errorf("InsertStmt must start with INSERT")
	}
	return h.Exec(ctx, query, args...)
}

func (h *Handle) Prepare(ctx context.Context, query string) (sqldb.PreparedStmt, error) {
	stmt, err := h.DB.PrepareContext(ctx, query)
	// NOTE: We can process a DBMS-specific error to produce a better abstracted error
	if err != nil {
		return nil, err
	}
	return &PreparedStmt{stmt: stmt}, nil
}
