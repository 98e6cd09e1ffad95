package pgsql

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zeptools/gw-dbconn/db/sqldb"
)

type Result struct {
	tag          pgconn.CommandTag
	lastInsertID int64 // from `RETURNING id`
	rowsAffected int64 // used when tag is empty
}

// Ensure pgsql.Result implements sqldb.Result
var _ sqldb.Result = (*Result)(nil)

func (r *Result) RowsAffected() (int64, error) {
	if n := r.tag.RowsAffected(); n != 0 {
		return n, nil
	}
	return r.rowsAffected, nil
}

// LastInsertId - PostgreSQL has no LastInsertId; only InsertStmt fills it.
func (r *Result) LastInsertId() (int64, error) {
	if r.lastInsertID != 0 {
		return r.lastInsertID, nil
	}
	return 0, fmt.Errorf("LastInsertId not supported; use `RETURNING id` instead")
}
